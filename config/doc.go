// Package config holds the settings shared by every aoc command.
//
// A config file is YAML; every key is optional and missing keys keep the
// values from Default:
//
//	inputs:
//	  day3-1: inputs/day_3_1.txt
//	  day6-2: s3://bucket/day6.txt
//	orbit:
//	  root: COM
//	  from: YOU
//	  to: SAN
//	log:
//	  level: info   # debug | info | warn | error
//	  format: text  # text | json
//
// Unknown keys are rejected. Parse and Load both validate the result, so a
// returned *Config is always usable.
package config

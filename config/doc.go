// Package config loads the YAML configuration of the gridpath service and
// the YAML grid files its CLI reads.
//
// A configuration file overrides Default field by field:
//
//	server:
//	  addr: ":8080"
//	  read_timeout: 5s
//	  write_timeout: 30s
//	log:
//	  level: info      # debug | info | warn | error
//	  format: text     # text | json
//	search:
//	  cluster_size: 10
//	  default_algorithm: astar
//	  cache_entries: 16
//	terrain:
//	  deep_water: 100
//	  water: 25
//
// Terrain keys are gridgraph terrain names; omitted kinds keep their
// default weight.
package config

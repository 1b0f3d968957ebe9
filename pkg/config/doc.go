// Package config loads filter definitions from JSON or YAML documents.
//
// A document lists filters under a top-level "filters" key:
//
//	filters:
//	  - name: severity
//	    label: Severity
//	    choices:
//	      - {id: BLOCKER, text: Blocker}
//	      - {id: MAJOR, text: Major}
//	  - name: assignees
//	    kind: assignee
//
// Kind defaults to static. Filter names must be unique across every document
// loaded into a Store.
package config

/*
Package domain contains the annotation record model shared by every other package.

It defines the record itself, the strand and phase enumerations, the dispatch
tables that route reserved attribute keys and projected field names, and the
error kinds raised while reading and transforming records. The package is kept
free of I/O so that readers, transforms and writers can depend on it.

# Key Entities

  - Annotation: one record line (typed columns plus an ordered attribute map).
  - Attributes: insertion-ordered key/value map for the free-form column.
  - Strand, Phase: typed columns 7 and 8.
  - LineError, FieldError, SegmentError: the error kinds of the read path.
*/
package domain

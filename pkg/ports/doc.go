/*
Package ports defines the capabilities the record pipeline depends on but does
not implement itself.

# Key Interfaces

  - UIDGenerator: produces identifiers for records that arrive without a uid.
    RandomUIDs is the production implementation; SequentialUIDs gives tests a
    deterministic sequence.
*/
package ports

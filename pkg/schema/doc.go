// Package schema enumerates the field names available in an annotation file.
//
// The names are the typed columns, always present, followed by the attribute
// keys found in the first records of the file, in the order they were first
// seen. The same input therefore always produces the same listing.
//
//	fields, err := schema.Discover(r.All(), 100)
//	if err != nil {
//	    // the input could not be read
//	}
//	for _, name := range fields.Names {
//	    fmt.Println(name)
//	}
package schema

/*
Package gffutils holds the version of the gff-utils tools. The functionality
lives in the packages below it.

# Packages

  - pkg/domain: the Annotation record, its typed fields and errors.
  - pkg/syntax: the attribute column in GFF (key=value) and GTF (key "value") form.
  - pkg/reader: streams annotations out of a GFF/GTF file.
  - pkg/transform: Add, Remove, Project and TableJoin, applied to one record.
  - pkg/table: tab separated side tables used by TableJoin.
  - pkg/schema: field discovery over the first records of a stream.
  - pkg/runner: drives a reader through a transform to a writer.

# Usage

	src := reader.New(os.Stdin, reader.WithDialect(syntax.GTF))
	eng := transform.New()
	step := runner.AddStep(eng, syntax.GFF, []transform.KeyValue{{Key: "taxon_id", Value: "9606"}}, false, nil)
	stats, err := runner.New().Run(src, os.Stdout, step)

Every annotation read without a uid attribute receives a new one, so the
output of any command can be filtered by uid afterwards.
*/
package gffutils

// Package syntax parses and writes the attribute column (column 9) of GFF and
// GTF records, and formats complete record lines.
//
// The two dialects differ only in how a segment is written:
//
//	GFF: ID=g1;Name=abc
//	GTF: gene_id "g1"; transcript_id "t1";
//
// Segments are separated by ';' in both. The reserved keys "uid" and
// "taxon_id" are lifted into typed fields while parsing and written back first
// when formatting.
package syntax

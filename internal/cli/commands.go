package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/frubino/gff-utils/pkg/runner"
	"github.com/frubino/gff-utils/pkg/schema"
	"github.com/frubino/gff-utils/pkg/syntax"
	"github.com/frubino/gff-utils/pkg/table"
	"github.com/frubino/gff-utils/pkg/transform"
)

// AddOptions contains the configuration of the add command.
type AddOptions struct {
	Input      string
	Output     string
	Attributes []string // "key:value"
	Overwrite  bool
	UIDFile    string
}

// Add sets attributes on the annotations of the input.
func (a *App) Add(opts AddOptions) error {
	pairs, err := transform.ParseKeyValues(opts.Attributes)
	if err != nil {
		return err
	}
	for _, kv := range pairs {
		if err := a.Dialect.CheckValue(kv.Value); err != nil {
			return fmt.Errorf("attribute %s: %w", kv.Key, err)
		}
	}
	a.Logger.Info("Adding attributes", "count", len(pairs))

	filter, err := a.readUIDFile(opts.UIDFile)
	if err != nil {
		return err
	}

	_, err = a.pipe(opts.Input, opts.Output,
		runner.AddStep(a.newEngine(), a.Dialect, pairs, opts.Overwrite, filter))
	return err
}

// RemoveOptions contains the configuration of the rm command.
type RemoveOptions struct {
	Input      string
	Output     string
	Attributes []string
	UIDFile    string
}

// Remove deletes attributes from the annotations of the input.
func (a *App) Remove(opts RemoveOptions) error {
	a.Logger.Info("Remove attributes", "count", len(opts.Attributes))

	filter, err := a.readUIDFile(opts.UIDFile)
	if err != nil {
		return err
	}

	_, err = a.pipe(opts.Input, opts.Output,
		runner.RemoveStep(a.newEngine(), a.Dialect, opts.Attributes, filter))
	return err
}

// ViewOptions contains the configuration of the view command.
type ViewOptions struct {
	Input      string
	Output     string
	Attributes []string
	KeepEmpty  bool
	Header     bool
}

// View writes the requested fields of every annotation as a table.
func (a *App) View(opts ViewOptions) error {
	a.Logger.Info("Attributes will be written", "count", len(opts.Attributes))

	var runOpts []runner.Option
	if opts.Header {
		runOpts = append(runOpts, runner.WithHeader(opts.Attributes))
	}
	stats, err := a.pipe(opts.Input, opts.Output,
		runner.ProjectStep(a.newEngine(), opts.Attributes, opts.KeepEmpty), runOpts...)
	a.Logger.Info("Read annotations", "count", stats.Read)
	return err
}

// TableOptions contains the configuration of the table command.
type TableOptions struct {
	Input       string
	Output      string
	TableFile   string
	Key         string
	Attributes  []string
	OnlyEdited  bool
	Prodigal    bool
	CommentChar string
	SkipRows    int
}

// Table merges the values of a side table into the annotations of the input.
func (a *App) Table(opts TableOptions) error {
	if len(opts.Attributes) == 0 {
		return fmt.Errorf("at least one attribute name is required")
	}
	if opts.SkipRows < 0 {
		return fmt.Errorf("skip-rows cannot be negative")
	}

	a.Logger.Info("Reading table from file", "path", opts.TableFile)
	tbl, err := table.LoadFile(opts.TableFile, table.Options{
		SkipRows:      opts.SkipRows,
		CommentPrefix: opts.CommentChar,
		Columns:       len(opts.Attributes) + 1,
	})
	if err != nil {
		return err
	}
	a.Logger.Info("Table loaded", "keys", tbl.Len())

	key := transform.JoinKey{Field: opts.Key, Prodigal: opts.Prodigal}
	_, err = a.pipe(opts.Input, opts.Output,
		runner.JoinStep(a.newEngine(), a.Dialect, tbl, key, opts.Attributes, opts.OnlyEdited))
	return err
}

// ConvertOptions contains the configuration of the convert command.
type ConvertOptions struct {
	Input  string
	Output string
	To     syntax.Dialect
}

// Convert rewrites the input in another attribute dialect.
func (a *App) Convert(opts ConvertOptions) error {
	a.Logger.Info("Converting annotations", "from", a.Dialect, "to", opts.To)
	_, err := a.pipe(opts.Input, opts.Output, runner.ConvertStep(opts.To))
	return err
}

// GtfToGff reads a GTF file and writes it as GFF, whatever the global format.
func (a *App) GtfToGff(input, output string) error {
	a.Dialect = syntax.GTF
	return a.Convert(ConvertOptions{Input: input, Output: output, To: syntax.GFF})
}

// FieldsOptions contains the configuration of the fields command.
type FieldsOptions struct {
	Input  string
	NumAnn int
}

// Fields lists the field names found in the first annotations of the input.
func (a *App) Fields(opts FieldsOptions) error {
	in, err := a.openInput(opts.Input)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	fields, err := schema.Discover(a.newReader(in).All(), opts.NumAnn)
	if err != nil {
		return err
	}
	a.Logger.Info("Found attributes", "fields", len(fields.Names), "annotations", fields.Scanned)

	if len(fields.Names) == 0 {
		return nil
	}
	_, err = io.WriteString(a.Stdout, strings.Join(fields.Names, "\n")+"\n")
	return HandleExecutionError(err)
}

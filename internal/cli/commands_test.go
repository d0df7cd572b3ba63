package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/frubino/gff-utils/internal/config"
	"github.com/frubino/gff-utils/internal/testutils"
	"github.com/frubino/gff-utils/pkg/domain"
	"github.com/frubino/gff-utils/pkg/ports"
	"github.com/frubino/gff-utils/pkg/syntax"
	"github.com/frubino/gff-utils/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	uid1 = "00000000-0000-0000-0000-000000000001"
	uid2 = "00000000-0000-0000-0000-000000000002"
)

const twoGenes = "chr1\tX\tgene\t1\t100\t.\t+\t.\tID=g1\n" +
	"chr1\tX\tgene\t200\t300\t.\t-\t.\tID=g2;product=kinase\n"

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	t.Setenv(config.EnvPath, "")

	var out bytes.Buffer
	app, err := NewApp("test", GlobalOptions{LogLevel: "error"}, strings.NewReader(input), &out, io.Discard)
	require.NoError(t, err)
	app.UIDs = &ports.SequentialUIDs{}
	return app, &out
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestNewApp_Defaults(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	app, err := NewApp("add", GlobalOptions{}, nil, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, syntax.GFF, app.Dialect)
	assert.Equal(t, config.Default(), app.Config)
	assert.NotNil(t, app.Metrics)
}

func TestNewApp_ConfigFallback(t *testing.T) {
	path := testutils.WriteFile(t, "config.yaml", "format: gtf\nlog_level: debug\n")
	app, err := NewApp("add", GlobalOptions{ConfigPath: path}, nil, nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, syntax.GTF, app.Dialect)

	app, err = NewApp("add", GlobalOptions{ConfigPath: path, Format: "gff"}, nil, nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, syntax.GFF, app.Dialect, "flag wins over config")
}

func TestNewApp_InvalidOptions(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	_, err := NewApp("add", GlobalOptions{Format: "bed"}, nil, nil, io.Discard)
	assert.Error(t, err)

	_, err = NewApp("add", GlobalOptions{LogLevel: "loud"}, nil, nil, io.Discard)
	assert.Error(t, err)

	_, err = NewApp("add", GlobalOptions{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}, nil, nil, io.Discard)
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	app, out := newTestApp(t, twoGenes)
	require.NoError(t, app.Add(AddOptions{Attributes: []string{"taxon_id:9606", "note:x"}}))

	assert.Equal(t, []string{
		"chr1\tX\tgene\t1\t100\t.\t+\t.\tuid=" + uid1 + ";taxon_id=9606;ID=g1;note=x",
		"chr1\tX\tgene\t200\t300\t.\t-\t.\tuid=" + uid2 + ";taxon_id=9606;ID=g2;product=kinase;note=x",
	}, outputLines(out))
}

func TestAdd_UIDFile(t *testing.T) {
	app, out := newTestApp(t, twoGenes)
	uids := testutils.WriteFile(t, "uids.txt", strings.ToUpper(uid2)+"\n")

	require.NoError(t, app.Add(AddOptions{Attributes: []string{"note:x"}, UIDFile: uids}))

	lines := outputLines(out)
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "note=x")
	assert.Contains(t, lines[1], "note=x")
}

func TestAdd_Errors(t *testing.T) {
	app, _ := newTestApp(t, twoGenes)
	assert.Error(t, app.Add(AddOptions{Attributes: []string{"novalue"}}))

	app, _ = newTestApp(t, twoGenes)
	err := app.Add(AddOptions{Attributes: []string{"taxon_id:human"}})
	assert.ErrorIs(t, err, domain.ErrTypedField)

	app, _ = newTestApp(t, twoGenes)
	assert.Error(t, app.Add(AddOptions{Attributes: []string{"a:b"}, UIDFile: filepath.Join(t.TempDir(), "none")}))
}

func TestAdd_RejectsSeparators(t *testing.T) {
	app, out := newTestApp(t, twoGenes)
	assert.ErrorIs(t, app.Add(AddOptions{Attributes: []string{"note:a;b=c"}}), transform.ErrSeparator)
	assert.Empty(t, out.String())

	app, out = newTestApp(t, twoGenes)
	app.Dialect = syntax.GTF
	assert.ErrorIs(t, app.Add(AddOptions{Attributes: []string{`note:say "hi"`}}), syntax.ErrUnwritableValue)
	assert.Empty(t, out.String())
}

func TestAdd_GzipOutput(t *testing.T) {
	app, _ := newTestApp(t, twoGenes)
	path := filepath.Join(t.TempDir(), "out.gff.gz")
	require.NoError(t, app.Add(AddOptions{Output: path, Attributes: []string{"note:x"}}))

	assert.Equal(t, 2, strings.Count(testutils.ReadFile(t, path), "note=x"))
}

func TestRemove(t *testing.T) {
	app, out := newTestApp(t, twoGenes)
	require.NoError(t, app.Remove(RemoveOptions{Attributes: []string{"product", "missing"}}))

	assert.Equal(t, []string{
		"chr1\tX\tgene\t1\t100\t.\t+\t.\tuid=" + uid1 + ";ID=g1",
		"chr1\tX\tgene\t200\t300\t.\t-\t.\tuid=" + uid2 + ";ID=g2",
	}, outputLines(out))
}

func TestView(t *testing.T) {
	app, out := newTestApp(t, twoGenes)
	require.NoError(t, app.View(ViewOptions{Attributes: []string{"ID", "product", "length"}, Header: true}))

	assert.Equal(t, []string{
		"#ID\tproduct\tlength",
		"g1\t100",
		"g2\tkinase\t101",
	}, outputLines(out))
}

func TestView_KeepEmpty(t *testing.T) {
	app, out := newTestApp(t, twoGenes)
	require.NoError(t, app.View(ViewOptions{Attributes: []string{"product"}, KeepEmpty: true}))
	assert.Equal(t, "\nkinase\n", out.String())

	app, out = newTestApp(t, twoGenes)
	require.NoError(t, app.View(ViewOptions{Attributes: []string{"product"}}))
	assert.Equal(t, "kinase\n", out.String())
}

func TestTable(t *testing.T) {
	app, out := newTestApp(t, twoGenes)
	tbl := testutils.WriteFile(t, "kegg.tsv", "# gene\tko\n"+"g2\tK00001\textra\n")

	require.NoError(t, app.Table(TableOptions{
		TableFile:   tbl,
		Key:         "ID",
		Attributes:  []string{"ko"},
		OnlyEdited:  true,
		CommentChar: "#",
	}))

	assert.Equal(t, []string{
		"chr1\tX\tgene\t200\t300\t.\t-\t.\tuid=" + uid2 + ";ID=g2;product=kinase;ko=K00001",
	}, outputLines(out))
}

func TestTable_Errors(t *testing.T) {
	app, _ := newTestApp(t, twoGenes)
	assert.Error(t, app.Table(TableOptions{TableFile: "x", Key: "ID"}))
	assert.Error(t, app.Table(TableOptions{TableFile: "x", Key: "ID", Attributes: []string{"ko"}, SkipRows: -1}))
	assert.Error(t, app.Table(TableOptions{
		TableFile:  filepath.Join(t.TempDir(), "missing.tsv"),
		Key:        "ID",
		Attributes: []string{"ko"},
	}))
}

func TestConvert(t *testing.T) {
	app, out := newTestApp(t, twoGenes)
	require.NoError(t, app.Convert(ConvertOptions{To: syntax.GTF}))

	assert.Equal(t, []string{
		"chr1\tX\tgene\t1\t100\t.\t+\t.\tuid \"" + uid1 + "\"; ID \"g1\";",
		"chr1\tX\tgene\t200\t300\t.\t-\t.\tuid \"" + uid2 + "\"; ID \"g2\"; product \"kinase\";",
	}, outputLines(out))
}

func TestFields(t *testing.T) {
	app, out := newTestApp(t, twoGenes)
	require.NoError(t, app.Fields(FieldsOptions{NumAnn: 1}))

	names := outputLines(out)
	assert.Equal(t, domain.TypedFieldNames, names[:len(domain.TypedFieldNames)])
	assert.Equal(t, []string{"ID"}, names[len(domain.TypedFieldNames):], "only the first annotation is scanned")
}

func TestClose_WritesMetrics(t *testing.T) {
	t.Setenv(config.EnvPath, "")
	path := filepath.Join(t.TempDir(), "metrics.prom")
	var out bytes.Buffer
	app, err := NewApp("add", GlobalOptions{LogLevel: "error", MetricsFile: path}, strings.NewReader(twoGenes), &out, io.Discard)
	require.NoError(t, err)

	require.NoError(t, app.Add(AddOptions{Attributes: []string{"uid:x"}}))
	require.NoError(t, app.Close())

	data := testutils.ReadFile(t, path)
	assert.Contains(t, data, `gffutils_records_read_total{command="add"} 2`)
	assert.Contains(t, data, `gffutils_warnings_total{command="add",kind="reserved_key"} 2`)
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, HandleExecutionError(syscall.EPIPE))
	assert.NoError(t, HandleExecutionError(nil))
	assert.Error(t, HandleExecutionError(io.ErrUnexpectedEOF))
}

func TestGtfToGff(t *testing.T) {
	app, out := newTestApp(t, "chr2\tY\texon\t7\t9\t.\t.\t0\tgene_id \"ABC\"; transcript_id \"T1\";\n")
	require.NoError(t, app.GtfToGff("", "-"))
	assert.Equal(t, "chr2\tY\texon\t7\t9\t.\t.\t0\tuid="+uid1+";gene_id=ABC;transcript_id=T1\n", out.String())
}

package transform

import (
	"testing"

	"github.com/frubino/gff-utils/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_TaxonScenario(t *testing.T) {
	rec := record(t, "chr1\tX\tgene\t1\t100\t.\t+\t.\tuid="+uid1+";ID=g1")

	err := New().Add(rec, []KeyValue{{Key: "taxon_id", Value: "9606"}}, false, nil)
	require.NoError(t, err)

	assert.Equal(t, uint32(9606), rec.TaxonID)
	assert.False(t, rec.Attributes.Has("taxon_id"))
	assert.Equal(t, int64(1), rec.Start)
	assert.Equal(t, int64(100), rec.End)
	assert.Equal(t, "chr1\tX\tgene\t1\t100\t.\t+\t.\tuid="+uid1+";taxon_id=9606;ID=g1", format(rec))
}

func TestAdd_OverwritePolicy(t *testing.T) {
	line := "c\ts\tgene\t1\t10\t.\t+\t.\tuid=" + uid1 + ";taxon_id=562;ID=g1;Name=old"
	pairs := []KeyValue{{"Name", "new"}, {"taxon_id", "9606"}, {"product", "p"}}

	t.Run("keep existing", func(t *testing.T) {
		rec := record(t, line)
		require.NoError(t, New().Add(rec, pairs, false, nil))
		assert.Equal(t, "old", attr(t, rec, "Name"))
		assert.Equal(t, uint32(9606), rec.TaxonID, "taxon_id is always assigned")
		assert.Equal(t, "p", attr(t, rec, "product"))
	})

	t.Run("overwrite", func(t *testing.T) {
		rec := record(t, line)
		require.NoError(t, New().Add(rec, pairs, true, nil))
		assert.Equal(t, "new", attr(t, rec, "Name"))
		assert.Equal(t, uint32(9606), rec.TaxonID)
		assert.Equal(t, "p", attr(t, rec, "product"))
	})
}

func TestAdd_LastPairWins(t *testing.T) {
	pairs := []KeyValue{{"k", "first"}, {"n", "x"}, {"k", "second"}, {"taxon_id", "1"}, {"taxon_id", "2"}}

	for _, overwrite := range []bool{false, true} {
		rec := record(t, "c\ts\tgene\t1\t10\t.\t+\t.\tuid="+uid1)
		require.NoError(t, New().Add(rec, pairs, overwrite, nil))
		assert.Equal(t, "second", attr(t, rec, "k"), "overwrite=%v", overwrite)
		assert.Equal(t, uint32(2), rec.TaxonID, "overwrite=%v", overwrite)
		assert.Equal(t, []string{"k", "n"}, rec.Attributes.Keys(), "first position is kept")
	}
}

func TestAdd_ZeroValueAnnotation(t *testing.T) {
	rec := &domain.Annotation{}
	require.NoError(t, New().Add(rec, []KeyValue{{"k", "v"}}, false, nil))
	assert.Equal(t, "v", attr(t, rec, "k"))
}

func TestAdd_Idempotent(t *testing.T) {
	rec := record(t, "c\ts\tgene\t1\t10\t.\t+\t.\tuid="+uid1+";ID=g1")
	pairs := []KeyValue{{"k", "v"}, {"taxon_id", "7"}}
	e := New()

	require.NoError(t, e.Add(rec, pairs, true, nil))
	once := format(rec)
	require.NoError(t, e.Add(rec, pairs, true, nil))
	assert.Equal(t, once, format(rec))
}

func TestAdd_Filter(t *testing.T) {
	line := "c\ts\tgene\t1\t10\t.\t+\t.\tuid=" + uid1 + ";ID=g1"
	pairs := []KeyValue{{"k", "v"}, {"ID", "changed"}}

	rec := record(t, line)
	require.NoError(t, New().Add(rec, pairs, true, NewUIDFilter(uid2)))
	assert.Equal(t, line, format(rec))

	rec = record(t, line)
	require.NoError(t, New().Add(rec, pairs, true, NewUIDFilter(uid2, uid1)))
	assert.Equal(t, "v", attr(t, rec, "k"))
	assert.Equal(t, "changed", attr(t, rec, "ID"))
}

func TestAdd_BadTaxon(t *testing.T) {
	rec := record(t, "c\ts\tgene\t1\t10\t.\t+\t.\tuid="+uid1)
	err := New().Add(rec, []KeyValue{{"taxon_id", "human"}}, false, nil)
	assert.ErrorIs(t, err, domain.ErrTypedField)
}

func TestAdd_UIDRejected(t *testing.T) {
	var warnings []error
	e := New(WithWarningHook(func(err error) { warnings = append(warnings, err) }))
	rec := record(t, "c\ts\tgene\t1\t10\t.\t+\t.\tuid="+uid1)

	require.NoError(t, e.Add(rec, []KeyValue{{"uid", uid2}}, true, nil))
	assert.Equal(t, uid1, rec.UID.String())
	assert.False(t, rec.Attributes.Has("uid"))
	require.Len(t, warnings, 1)
	assert.ErrorIs(t, warnings[0], domain.ErrReservedKey)
}

func TestParseKeyValues(t *testing.T) {
	pairs, err := ParseKeyValues([]string{"taxon_id:9606", "url:http://x?a=b", "empty:"})
	require.NoError(t, err)
	assert.Equal(t, []KeyValue{{"taxon_id", "9606"}, {"url", "http://x?a=b"}, {"empty", ""}}, pairs)

	for _, bad := range []string{"note:a;b=c", "a=b:v", "two words:v", "k;x:v"} {
		_, err = ParseKeyValue(bad)
		assert.ErrorIs(t, err, ErrSeparator, bad)
	}

	_, err = ParseKeyValues([]string{"novalue"})
	assert.Error(t, err)
	_, err = ParseKeyValue(":v")
	assert.Error(t, err)
}

package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_IsBlank(t *testing.T) {
	assert.True(t, Empty().IsBlank())
	assert.True(t, Text("").IsBlank())
	assert.True(t, Text("  \t").IsBlank())
	assert.False(t, Text("x").IsBlank())
	assert.False(t, Number(0).IsBlank(), "zero is a value")
}

func TestCell_String(t *testing.T) {
	assert.Equal(t, "", Empty().String())
	assert.Equal(t, "abc", Text("abc").String())
	assert.Equal(t, "50000", Number(50000).String())
	assert.Equal(t, "0.5", Number(0.5).String())
	assert.Equal(t, "50,000", NumberText(50000, "50,000").String())
}

func TestCell_JSON(t *testing.T) {
	b, err := json.Marshal([]Cell{Empty(), Text("a"), Number(1.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `[null,"a",1.5]`, string(b))

	var cells []Cell
	require.NoError(t, json.Unmarshal([]byte(`[null,"a",2]`), &cells))
	assert.Equal(t, []Cell{Empty(), Text("a"), Number(2)}, cells)
}

func TestCell_JSONNonFinite(t *testing.T) {
	b, err := json.Marshal([]Cell{NumberText(math.Inf(1), "inf"), Number(math.NaN())})
	require.NoError(t, err)
	assert.JSONEq(t, `["inf","NaN"]`, string(b))
}

func TestGrid_At(t *testing.T) {
	g := Grid{{Text("a")}, {}, {Text("b"), Number(1)}}
	assert.Equal(t, Text("a"), g.At(0, 0))
	assert.Equal(t, Number(1), g.At(2, 1))
	assert.Equal(t, Empty(), g.At(1, 0))
	assert.Equal(t, Empty(), g.At(0, 5))
	assert.Equal(t, Empty(), g.At(9, 0))
	assert.Equal(t, Empty(), g.At(-1, 0))
}

func TestRow_OrderAndDuplicates(t *testing.T) {
	r := NewRow(3)
	r.Set("b", Text("1"))
	r.Set("a", Text("2"))
	r.Set("b", Text("3"))
	r.Set("", Text("4"))

	assert.Equal(t, []string{"b", "a", ""}, r.Keys())
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, Text("3"), r.Cell("b"), "last write wins")

	_, ok := r.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, Empty(), r.Cell("missing"))

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"b":"3","a":"2","":"4"}`, string(b))
}

func TestRow_KeysIsACopy(t *testing.T) {
	r := NewRow(1)
	r.Set("a", Empty())
	k := r.Keys()
	k[0] = "z"
	assert.Equal(t, []string{"a"}, r.Keys())
}

func TestTimeRange_Contains(t *testing.T) {
	from, to := 9*60, 10*60
	tr := TimeRange{From: &from, To: &to}

	assert.True(t, tr.Contains(9*60), "lower bound inclusive")
	assert.True(t, tr.Contains(9*60+59))
	assert.False(t, tr.Contains(10*60), "upper bound exclusive")
	assert.False(t, tr.Contains(8*60+59))

	assert.True(t, TimeRange{}.Contains(0))
	assert.True(t, TimeRange{}.Contains(1439))
	assert.True(t, TimeRange{To: &to}.Contains(0))
	assert.False(t, TimeRange{From: &from}.Contains(0))
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:00")
	require.NoError(t, err)
	assert.Equal(t, 540, m)

	m, err = ParseClock(" 23:59:30 ")
	require.NoError(t, err)
	assert.Equal(t, 1439, m)

	for _, bad := range []string{"", "9", "24:00", "10:60", "ab:cd"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseTimeRange(t *testing.T) {
	tr, err := ParseTimeRange("", "")
	require.NoError(t, err)
	assert.Nil(t, tr.From)
	assert.Nil(t, tr.To)

	tr, err = ParseTimeRange("09:00", "")
	require.NoError(t, err)
	require.NotNil(t, tr.From)
	assert.Equal(t, 540, *tr.From)
	assert.Nil(t, tr.To)

	_, err = ParseTimeRange("", "nope")
	assert.ErrorContains(t, err, "to:")
}

func TestMetadata_Day(t *testing.T) {
	var m Metadata
	assert.Equal(t, "", m.Day())

	v := "01/09/2025 00:00:00"
	m.Set(FieldFromDate, &v)
	assert.Equal(t, "01/09/2025", m.Day())

	d := "01/09/2025"
	m.Set(FieldFromDate, &d)
	assert.Equal(t, "01/09/2025", m.Day())
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, 7, l.HeaderRow)
	assert.Contains(t, l.Fields, FieldSpec{FieldChain, 2, 1})
	assert.Contains(t, l.Fields, FieldSpec{FieldTotalLit, 5, 4})
	assert.Len(t, l.Fields, 7)
}

package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookupUnknown(t *testing.T) {
	_, err := defaultCatalog.lookup("nosuchcommand")
	require.Error(t, err)
	var ce *ClientError
	assert.ErrorAs(t, err, &ce)
}

// TestIncrDecrDistinct guards against registering DECR after INCR silently
// overwriting the INCR descriptor.
func TestIncrDecrDistinct(t *testing.T) {
	incr, err := defaultCatalog.lookup("incr")
	require.NoError(t, err)
	decr, err := defaultCatalog.lookup("decr")
	require.NoError(t, err)

	assert.NotSame(t, incr, decr)
	assert.Equal(t, "INCR", incr.verb)
	assert.Equal(t, "DECR", decr.verb)
}

// TestDelCoercesToBool guards DEL's reply shaper against regressing to the
// raw deleted-key count: it belongs to the same coerce-integer-to-boolean
// family as EXISTS, the *NX commands, SADD/SREM, SMOVE, SISMEMBER, EXPIRE*,
// MOVE, and ZADD/ZREM.
func TestDelCoercesToBool(t *testing.T) {
	cmd, err := defaultCatalog.lookup("del")
	require.NoError(t, err)

	v, err := cmd.shape(reply{Kind: integerReply, Integer: 2})
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = cmd.shape(reply{Kind: integerReply, Integer: 0})
	require.NoError(t, err)
	assert.Equal(t, false, v)
}

func TestRegisterCommandAcceptsExportedDescriptor(t *testing.T) {
	c := NewClient("127.0.0.1:0")
	c.RegisterCommand("ding", NewCommand("DING", InlineEncoding, shapeStatusOK, false, false, nil))

	cmd, err := c.catalog.lookup("ding")
	require.NoError(t, err)
	assert.Equal(t, "DING", cmd.verb)
}

func TestCatalogCloneIsIndependent(t *testing.T) {
	clone := defaultCatalog.clone()
	clone["get"] = &command{verb: "GET", encoding: inline, shape: shapeBulk}

	original, err := defaultCatalog.lookup("get")
	require.NoError(t, err)
	cloned, err := clone.lookup("get")
	require.NoError(t, err)
	assert.NotSame(t, original, cloned)
}

func TestFilterSort(t *testing.T) {
	out := filterSort([]interface{}{"mylist", &SortOptions{
		By:         "weight_*",
		Get:        []string{"object_*", "#"},
		HasLimit:   true,
		Offset:     0,
		Count:      10,
		Descending: true,
		Alpha:      true,
		Store:      "sorted",
	}})

	want := [][]byte{
		[]byte("mylist"),
		[]byte("BY"), []byte("weight_*"),
		[]byte("GET"), []byte("object_*"),
		[]byte("GET"), []byte("#"),
		[]byte("LIMIT"), []byte("0"), []byte("10"),
		[]byte("DESC"),
		[]byte("ALPHA"),
		[]byte("STORE"), []byte("sorted"),
	}
	assert.Equal(t, want, out)
}

func TestFilterSortNoOptions(t *testing.T) {
	out := filterSort([]interface{}{"mylist"})
	assert.Equal(t, [][]byte{[]byte("mylist")}, out)
}

func TestFilterSlaveOfNoArgs(t *testing.T) {
	out := filterSlaveOf(nil)
	assert.Equal(t, [][]byte{[]byte("NO"), []byte("ONE")}, out)
}

func TestFilterSlaveOfWithArgs(t *testing.T) {
	out := filterSlaveOf([]interface{}{"127.0.0.1", 6380})
	assert.Equal(t, [][]byte{[]byte("127.0.0.1"), []byte("6380")}, out)
}

func TestShapePing(t *testing.T) {
	v, err := shapePing(reply{Kind: statusReply, Status: "PONG", StatusTrue: false})
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = shapePing(reply{Kind: statusReply, Status: "PENG"})
	require.NoError(t, err)
	assert.Equal(t, false, v)
}

func TestShapeKeysDecodesArray(t *testing.T) {
	v, err := shapeKeys(reply{Kind: multiBulkReply, Multi: []reply{
		{Kind: bulkReply, Bulk: []byte("one two")},
		{Kind: bulkReply, Bulk: []byte("three")},
	}})
	require.NoError(t, err)
	got := v.([][]byte)
	require.Len(t, got, 2)
	assert.Equal(t, "one two", string(got[0]))
	assert.Equal(t, "three", string(got[1]))
}

func TestShapeInfoParsesPairs(t *testing.T) {
	v, err := shapeInfo(reply{Kind: bulkReply, Bulk: []byte("redis_version:2.2.0\r\nconnected_clients:1\r\n\r\nrole:master")})
	require.NoError(t, err)
	got := v.([]KV)
	require.Len(t, got, 3)
	assert.Equal(t, "redis_version", string(got[0].Key))
	assert.Equal(t, "2.2.0", string(got[0].Value))
	assert.Equal(t, "role", string(got[2].Key))
	assert.Equal(t, "master", string(got[2].Value))
}

func TestShapeBulkArrayNull(t *testing.T) {
	v, err := shapeBulkArray(reply{Kind: multiBulkReply, Null: true})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestShapersPropagateServerError(t *testing.T) {
	_, err := shapeInteger(reply{Kind: errorReply, Err: "out of range"})
	require.Error(t, err)
	var se ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "out", se.Prefix())
}

func TestToBytesArgsFlattensKVPairs(t *testing.T) {
	out := toBytesArgs([]interface{}{[]KV{{Key: []byte("f1"), Value: []byte("v1")}, {Key: []byte("f2"), Value: []byte("v2")}}})
	want := [][]byte{[]byte("f1"), []byte("v1"), []byte("f2"), []byte("v2")}
	assert.Equal(t, want, out)
}

package redis

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeInline(t *testing.T) {
	got := encodeInline("PING", nil)
	assert.Equal(t, "PING\r\n", string(got))

	got = encodeInline("GET", [][]byte{[]byte("foo")})
	assert.Equal(t, "GET foo\r\n", string(got))
}

func TestEncodeBulk(t *testing.T) {
	got := encodeBulk("SET", [][]byte{[]byte("foo"), []byte("bar baz")})
	assert.Equal(t, "SET foo 7\r\nbar baz\r\n", string(got))
}

func TestEncodeMultiBulk(t *testing.T) {
	got := encodeMultiBulk("MSET", [][]byte{[]byte("k1"), []byte("v1")})
	assert.Equal(t, "*3\r\n$4\r\nMSET\r\n$2\r\nk1\r\n$2\r\nv1\r\n", string(got))
}

func parseFrom(t *testing.T, s string) reply {
	t.Helper()
	r, err := parseReply(bufio.NewReader(bytes.NewBufferString(s)))
	require.NoError(t, err)
	return r
}

func TestParseReplyStatus(t *testing.T) {
	r := parseFrom(t, "+OK\r\n")
	assert.Equal(t, statusReply, r.Kind)
	assert.True(t, r.StatusTrue)

	r = parseFrom(t, "+QUEUED\r\n")
	assert.False(t, r.StatusTrue)
	assert.Equal(t, "QUEUED", r.Status)
}

func TestParseReplyError(t *testing.T) {
	r := parseFrom(t, "-ERR no such key\r\n")
	assert.Equal(t, errorReply, r.Kind)
	assert.Equal(t, "no such key", r.Err)

	r = parseFrom(t, "-WRONGTYPE Operation against a key holding the wrong kind of value\r\n")
	assert.Equal(t, "WRONGTYPE Operation against a key holding the wrong kind of value", r.Err)
}

func TestParseReplyBulk(t *testing.T) {
	r := parseFrom(t, "$3\r\nfoo\r\n")
	assert.Equal(t, bulkReply, r.Kind)
	assert.Equal(t, []byte("foo"), r.Bulk)

	r = parseFrom(t, "$-1\r\n")
	assert.True(t, r.Null)
}

func TestParseReplyMultiBulk(t *testing.T) {
	r := parseFrom(t, "*2\r\n$3\r\nfoo\r\n$3\r\nbar\r\n")
	require.Equal(t, multiBulkReply, r.Kind)
	require.Len(t, r.Multi, 2)
	assert.Equal(t, []byte("foo"), r.Multi[0].Bulk)
	assert.Equal(t, []byte("bar"), r.Multi[1].Bulk)

	r = parseFrom(t, "*-1\r\n")
	assert.True(t, r.Null)
}

func TestParseReplyInteger(t *testing.T) {
	r := parseFrom(t, ":1000\r\n")
	assert.Equal(t, integerReply, r.Kind)
	assert.Equal(t, int64(1000), r.Integer)

	r = parseFrom(t, ":-1\r\n")
	assert.Equal(t, int64(-1), r.Integer)
}

func TestParseReplyUnknownPrefix(t *testing.T) {
	_, err := parseReply(bufio.NewReader(bytes.NewBufferString("!nope\r\n")))
	require.Error(t, err)
	var mr *MalformedResponse
	assert.ErrorAs(t, err, &mr)
}

func TestParseReplyNotCRLFTerminated(t *testing.T) {
	_, err := parseReply(bufio.NewReader(bytes.NewBufferString("+OK\n")))
	require.Error(t, err)
	var mr *MalformedResponse
	assert.ErrorAs(t, err, &mr)
}

func TestParseReplyNonNumericBulkLength(t *testing.T) {
	_, err := parseReply(bufio.NewReader(bytes.NewBufferString("$abc\r\n")))
	require.Error(t, err)
	var mr *MalformedResponse
	assert.ErrorAs(t, err, &mr)
}

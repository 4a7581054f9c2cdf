package canonical

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeScalars(t *testing.T) {
	assert.Equal(t, "", Serialize(Null))
	assert.Equal(t, "True", Serialize(Bool(true)))
	assert.Equal(t, "False", Serialize(Bool(false)))
	assert.Equal(t, "42", Serialize(Int(42)))
	assert.Equal(t, "hello", Serialize(Str("hello")))
}

func TestSerializeArrayJoinsWithComma(t *testing.T) {
	arr := Arr(Int(1), Int(2), Str("three"))
	assert.Equal(t, "1,2,three", Serialize(arr))
}

func TestSerializeObjectJoinsWithPipeInInsertionOrder(t *testing.T) {
	obj := NewObject().Set("b", Str("2")).Set("a", Str("1"))
	assert.Equal(t, "b:2|a:1", Serialize(obj))
}

func TestSerializeTopLevelSkipsSignatureKeys(t *testing.T) {
	base := NewObject().Set("type", Str("10001")).Set("amount", Int(10))
	withSigs := NewObject().
		Set("type", Str("10001")).
		Set("amount", Int(10)).
		Set("signature", Str("sig")).
		Set("signatures", Arr(Str("a"), Str("b"))).
		Set("fees", Arr())

	assert.Equal(t, Serialize(base), Serialize(withSigs))
}

func TestSerializeNestedDoesNotSkipSignatureKeys(t *testing.T) {
	// The top-level-only exception: a nested object's "signature" key must
	// still be emitted, or every nested signature silently corrupts.
	nested := NewObject().Set("inner", NewObject().Set("signature", Str("keep-me")))
	assert.Contains(t, Serialize(nested), "signature:keep-me")
}

func TestSerializeHashesRawHashEncFields(t *testing.T) {
	obj := NewObject().Set("raw", Str("some-secret-value"))
	want := sha256.Sum256([]byte("some-secret-value"))
	assert.Equal(t, "raw:"+hex.EncodeToString(want[:]), Serialize(obj))
}

func TestSerializeIsStableAcrossRuns(t *testing.T) {
	obj := NewObject().Set("z", Str("1")).Set("a", Str("2")).Set("m", Str("3"))
	first := Serialize(obj)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Serialize(obj))
	}
}

func TestParseJSONPreservesKeyOrder(t *testing.T) {
	v, err := ParseJSON([]byte(`{"z":1,"a":2,"m":3}`))
	require.NoError(t, err)
	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
	assert.Equal(t, "z:1|a:2|m:3", Serialize(obj))
}

func TestValidateHashableFieldsAcceptsStrings(t *testing.T) {
	obj := NewObject().Set("raw", Str("ok")).
		Set("inner", NewObject().Set("hash", Str("also-ok")))
	assert.NoError(t, ValidateHashableFields(context.Background(), obj))
}

func TestValidateHashableFieldsRejectsNonString(t *testing.T) {
	obj := NewObject().Set("enc", Int(5))
	err := ValidateHashableFields(context.Background(), obj)
	require.Error(t, err)
	assert.Equal(t, sovi18n.KindInvalidState, sovi18n.KindOf(err))
}

func TestValidateHashableFieldsChecksNestedObjects(t *testing.T) {
	obj := NewObject().Set("outer", NewObject().Set("hash", Bl(true)))
	err := ValidateHashableFields(context.Background(), obj)
	require.Error(t, err)
}

func TestParseJSONNestedArraysAndObjects(t *testing.T) {
	v, err := ParseJSON([]byte(`{"inputs":[["addr1",1],["addr2",2]],"extra":null,"ok":true}`))
	require.NoError(t, err)
	assert.Equal(t, "inputs:addr1,1,addr2,2|extra:|ok:True", Serialize(v))
}

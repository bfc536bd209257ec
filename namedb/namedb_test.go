// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namedb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nomencoin/nomend/chain"
	"github.com/nomencoin/nomend/fault"
	"github.com/nomencoin/nomend/namecache"
	"github.com/nomencoin/nomend/namedb"
	"github.com/nomencoin/nomend/namerecord"
	"github.com/nomencoin/nomend/storage"
	"github.com/nomencoin/nomend/unotrie"
)

func TestGetName(t *testing.T) {
	setup(t)
	defer teardown(t)

	data := testData(1)
	cache := namecache.New()
	register(cache, "example", data)
	flush(t, cache)

	stored, err := namedb.GetName([]byte("example"))
	assert.Nil(t, err, "get error")
	assert.True(t, stored.Equal(data), "wrong record")

	_, err = namedb.GetName([]byte("missing"))
	assert.Equal(t, fault.ErrNameNotFound, err, "missing name not reported")

	// a flushed tombstone removes the record
	cache = namecache.New()
	cache.Remove([]byte("example"))
	flush(t, cache)

	_, err = namedb.GetName([]byte("example"))
	assert.Equal(t, fault.ErrNameNotFound, err, "tombstone not applied")
}

func TestGetNamesForHeight(t *testing.T) {
	setup(t)
	defer teardown(t)

	cache := namecache.New()
	cache.AddExpireIndex([]byte("first"), 100)
	cache.AddExpireIndex([]byte("second"), 100)
	cache.AddExpireIndex([]byte("other"), 101)
	flush(t, cache)

	names, err := namedb.GetNamesForHeight(100)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 2, len(names), "wrong name count")
	_, ok := names["first"]
	assert.True(t, ok, "missing \"first\"")
	_, ok = names["second"]
	assert.True(t, ok, "missing \"second\"")

	names, err = namedb.GetNamesForHeight(102)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 0, len(names), "unexpected names")

	// a flushed removal flag erases the index entry
	cache = namecache.New()
	cache.RemoveExpireIndex([]byte("first"), 100)
	flush(t, cache)

	names, err = namedb.GetNamesForHeight(100)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 1, len(names), "removal flag not applied")
}

func TestNameHistoryRoundTrip(t *testing.T) {
	setup(t)
	defer teardown(t)

	history := namerecord.NameHistory{}
	history.Push(testData(1))
	history.Push(testData(2))

	cache := namecache.New()
	register(cache, "n", testData(3))
	cache.SetHistory([]byte("n"), history)
	flush(t, cache)

	stored, err := namedb.GetNameHistory([]byte("n"))
	assert.Nil(t, err, "get history error")
	assert.Equal(t, 2, len(stored), "wrong history length")
	for i := range history {
		assert.True(t, history[i].Equal(&stored[i]), "entry %d mismatch", i)
	}

	// an empty history erases the stored record
	cache = namecache.New()
	cache.SetHistory([]byte("n"), namerecord.NameHistory{})
	flush(t, cache)

	_, err = namedb.GetNameHistory([]byte("n"))
	assert.Equal(t, fault.ErrNameNotFound, err, "history record not erased")
}

func TestIterateNames(t *testing.T) {
	setup(t)
	defer teardown(t)

	cache := namecache.New()
	register(cache, "delta", testData(1))
	register(cache, "alpha", testData(2))
	register(cache, "echo", testData(3))
	flush(t, cache)

	it := namedb.IterateNames()
	defer it.Release()

	expected := []string{"alpha", "delta", "echo"}
	for i, e := range expected {
		name, data, ok := it.Next()
		if !ok {
			t.Fatalf("%d: iterator ended early", i)
		}
		assert.Equal(t, e, string(name), "wrong name")
		assert.NotNil(t, data, "missing data")
	}
	_, _, ok := it.Next()
	assert.False(t, ok, "excess elements")

	// seek restarts mid-range
	it.Seek([]byte("d"))
	name, _, ok := it.Next()
	assert.True(t, ok, "seek found nothing")
	assert.Equal(t, "delta", string(name), "wrong name after seek")
}

// a cache layered over the database enumerates the effective mapping
func TestIterateNamesMerged(t *testing.T) {
	setup(t)
	defer teardown(t)

	base := namecache.New()
	register(base, "a", testData(1))
	register(base, "c", testData(2))
	register(base, "e", testData(3))
	flush(t, base)

	overlay := namecache.New()
	overlay.Set([]byte("b"), testData(4))
	overlay.Set([]byte("c"), testData(5))
	overlay.Remove([]byte("e"))

	it := overlay.IterateNames(namedb.IterateNames())
	defer it.Release()

	expected := []struct {
		name string
		data *namerecord.NameData
	}{
		{"a", testData(1)},
		{"b", testData(4)},
		{"c", testData(5)},
	}
	for i, e := range expected {
		name, data, ok := it.Next()
		if !ok {
			t.Fatalf("%d: iterator ended early", i)
		}
		assert.Equal(t, e.name, string(name), "wrong name")
		assert.True(t, data.Equal(e.data), "wrong data for %q", name)
	}
	_, _, ok := it.Next()
	assert.False(t, ok, "excess elements")
}

// the trie built from the database must equal the trie built from
// the cache's effective mapping
func TestBuildTrie(t *testing.T) {
	setup(t)
	defer teardown(t)

	cache := namecache.New()
	register(cache, "foo", testData(1))
	register(cache, "foobar", testData(2))
	register(cache, "foobaz", testData(3))
	flush(t, cache)

	reference := unotrie.New()
	reference.Set([]byte("foo"), testData(1), false)
	reference.Set([]byte("foobar"), testData(2), false)
	reference.Set([]byte("foobaz"), testData(3), false)

	for _, expanded := range []bool{true, false} {
		trie, err := namedb.BuildTrie(expanded)
		assert.Nil(t, err, "build error")
		assert.Equal(t, reference.GetHash(), trie.GetHash(), "hash mismatch")
	}

	// incremental update through a cache tracks the direct build
	update := namecache.New()
	update.Set([]byte("fresh"), testData(4))
	update.Remove([]byte("foobar"))

	trie, err := namedb.BuildTrie(false)
	assert.Nil(t, err, "build error")
	err = update.ApplyToTrie(trie, false)
	assert.Nil(t, err, "apply error")

	reference = unotrie.New()
	reference.Set([]byte("foo"), testData(1), false)
	reference.Set([]byte("foobaz"), testData(3), false)
	reference.Set([]byte("fresh"), testData(4), false)
	assert.Equal(t, reference.GetHash(), trie.GetHash(), "incremental hash mismatch")
}

func TestValidate(t *testing.T) {
	setup(t)
	defer teardown(t)

	cache := namecache.New()
	register(cache, "alive", testData(1))   // height 101
	register(cache, "ancient", testData(2)) // height 102
	flush(t, cache)

	// local chain expiration depth is 30, so both records are live
	// well below height 130
	utxo := map[string]struct{}{"alive": {}, "ancient": {}}
	err := namedb.Validate(chain.Local, 110, utxo, nil)
	assert.Nil(t, err, "validation error")

	// at 130 the height 101 record is expired when checked at the
	// next height, so it needs no matching output
	err = namedb.Validate(chain.Local, 130, map[string]struct{}{"ancient": {}}, nil)
	assert.Nil(t, err, "validation error with expired name")

	// without an output view the comparison is skipped
	err = namedb.Validate(chain.Local, 110, nil, nil)
	assert.Nil(t, err, "validation error without output view")

	// missing output for an unexpired name
	err = namedb.Validate(chain.Local, 110, map[string]struct{}{"alive": {}}, nil)
	assert.NotNil(t, err, "missing output not detected")

	// excess output
	utxo["bogus"] = struct{}{}
	err = namedb.Validate(chain.Local, 110, utxo, nil)
	assert.NotNil(t, err, "excess output not detected")
}

func TestValidateIndexMismatch(t *testing.T) {
	setup(t)
	defer teardown(t)

	// name record without expire entry
	cache := namecache.New()
	cache.Set([]byte("lonely"), testData(1))
	flush(t, cache)

	err := namedb.Validate(chain.Local, 110, nil, nil)
	assert.NotNil(t, err, "missing expire entry not detected")

	// fix it, then break the other direction
	cache = namecache.New()
	cache.AddExpireIndex([]byte("lonely"), testData(1).Height)
	cache.AddExpireIndex([]byte("phantom"), 500)
	flush(t, cache)

	err = namedb.Validate(chain.Local, 110, nil, nil)
	assert.NotNil(t, err, "orphan expire entry not detected")

	// and a height disagreement
	cache = namecache.New()
	cache.RemoveExpireIndex([]byte("phantom"), 500)
	cache.RemoveExpireIndex([]byte("lonely"), testData(1).Height)
	cache.AddExpireIndex([]byte("lonely"), testData(1).Height+1)
	flush(t, cache)

	err = namedb.Validate(chain.Local, 110, nil, nil)
	assert.NotNil(t, err, "height mismatch not detected")
}

func TestValidateHistory(t *testing.T) {
	setup(t)
	defer teardown(t)

	cache := namecache.New()
	register(cache, "n", testData(1))
	cache.SetHistory([]byte("n"), namerecord.NameHistory{*testData(2)})
	flush(t, cache)

	err := namedb.Validate(chain.Local, 110, nil, nil)
	assert.Nil(t, err, "validation error")

	// history for a name that has no record
	cache = namecache.New()
	cache.SetHistory([]byte("ghost"), namerecord.NameHistory{*testData(3)})
	flush(t, cache)

	err = namedb.Validate(chain.Local, 110, nil, nil)
	assert.NotNil(t, err, "orphan history not detected")

	// with tracking switched off any history record is an error
	namecache.Finalise()
	_ = namecache.Initialise(false)
	defer func() {
		namecache.Finalise()
		_ = namecache.Initialise(true)
	}()

	err = namedb.Validate(chain.Local, 110, nil, nil)
	assert.NotNil(t, err, "history with tracking disabled not detected")
}

func TestValidateInterrupt(t *testing.T) {
	setup(t)
	defer teardown(t)

	cache := namecache.New()
	register(cache, "n", testData(1))
	flush(t, cache)

	interrupt := make(chan struct{})
	close(interrupt)

	err := namedb.Validate(chain.Local, 110, nil, interrupt)
	assert.Equal(t, fault.ErrValidationInterrupted, err, "interrupt not honoured")
}

// uncommitted batch contents must not leak into reads after abort
func TestAbortedFlush(t *testing.T) {
	setup(t)
	defer teardown(t)

	cache := namecache.New()
	register(cache, "volatile", testData(1))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction begin error")
	cache.WriteBatch(trx)
	trx.Abort()

	_, err = namedb.GetName([]byte("volatile"))
	assert.Equal(t, fault.ErrNameNotFound, err, "aborted write visible")
}

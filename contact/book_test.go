// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package contact

import (
	"bytes"
	"log"
	"math/rand"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook(Options{})
	for _, r := range Sample() {
		require.NoError(t, b.Add(r))
	}
	return b
}

func names(seq func(func(Record) bool)) []string {
	var out []string
	for r := range seq {
		out = append(out, r.Name)
	}
	return out
}

func TestBook_AddRejectsEmptyKeys(t *testing.T) {
	b := NewBook(Options{})
	require.ErrorIs(t, b.Add(Record{Phone: "0851234567"}), ErrEmptyName)
	require.ErrorIs(t, b.Add(Record{Name: "Nobody"}), ErrEmptyPhone)
	require.Zero(t, b.Len())
}

func TestBook_FindByEitherKey(t *testing.T) {
	b := sampleBook(t)
	require.Equal(t, 9, b.Len())

	r, ok := b.Find(NameOrder, "Joseph")
	require.True(t, ok)
	require.Equal(t, Record{Name: "Joseph", Phone: "0873787608", Address: "Apt 8"}, r)

	r, ok = b.Find(PhoneOrder, "0850602678")
	require.True(t, ok)
	require.Equal(t, "Cory", r.Name)

	_, ok = b.Find(NameOrder, "Nobody")
	require.False(t, ok)
	_, ok = b.Find(PhoneOrder, "Joseph")
	require.False(t, ok, "a name must not resolve in the phone ordering")
}

func TestBook_DeleteKeepsTreesInStep(t *testing.T) {
	b := sampleBook(t)

	r, ok := b.Delete(NameOrder, "Joseph")
	require.True(t, ok)
	require.Equal(t, "0873787608", r.Phone)
	require.Equal(t, 8, b.Len())
	require.Equal(t, 8, b.Tree(PhoneOrder).Len())
	require.NoError(t, b.Verify())

	_, ok = b.Find(PhoneOrder, "0873787608")
	require.False(t, ok, "record left behind in the phone tree")

	r, ok = b.Delete(PhoneOrder, "0850602678")
	require.True(t, ok)
	require.Equal(t, "Cory", r.Name)
	_, ok = b.Find(NameOrder, "Cory")
	require.False(t, ok, "record left behind in the name tree")
	require.NoError(t, b.Verify())

	_, ok = b.Delete(NameOrder, "Joseph")
	require.False(t, ok, "second delete of the same key")
}

func TestBook_DeleteInvalidatesCachedLookups(t *testing.T) {
	b := sampleBook(t)

	_, ok := b.Find(NameOrder, "Mary")
	require.True(t, ok)

	_, ok = b.Delete(PhoneOrder, "0856776227")
	require.True(t, ok)

	_, ok = b.Find(NameOrder, "Mary")
	require.False(t, ok, "stale cached record served after delete")
}

func TestBook_DuplicateNamesDeleteTheMatchingPhone(t *testing.T) {
	b := NewBook(Options{})
	first := Record{Name: "Sam", Phone: "0851111111", Address: "Apt 1"}
	second := Record{Name: "Sam", Phone: "0852222222", Address: "Apt 2"}
	require.NoError(t, b.Add(first))
	require.NoError(t, b.Add(second))

	removed, ok := b.Delete(PhoneOrder, second.Phone)
	require.True(t, ok)
	require.Equal(t, second, removed)

	r, ok := b.Find(NameOrder, "Sam")
	require.True(t, ok)
	require.Equal(t, first, r, "the other Sam was removed from the name tree")
	require.NoError(t, b.Verify())
}

func TestBook_AllFollowsOrdering(t *testing.T) {
	b := sampleBook(t)

	require.Equal(t,
		[]string{"Abraham", "Betty", "Cliodhna", "Cory", "Jordan", "Joseph", "Mary", "Zach", "Zed"},
		names(b.All(NameOrder)))

	var phones []string
	for r := range b.All(PhoneOrder) {
		phones = append(phones, r.Phone)
	}
	require.True(t, slices.IsSorted(phones))
	require.Len(t, phones, 9)
}

func TestBook_RandomWorkload(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := NewBook(Options{BloomBits: 256, BloomHashes: 3})
	live := map[string]Record{}

	for step := 0; step < 2000; step++ {
		if len(live) > 0 && rng.Intn(3) == 0 {
			var victim Record
			for _, r := range live {
				victim = r
				break
			}
			o := Order(rng.Intn(2))
			removed, ok := b.Delete(o, o.Key(victim))
			require.True(t, ok)
			require.Equal(t, o.Key(victim), o.Key(removed))
			delete(live, removed.Phone)
		} else {
			r := Record{
				Name:    strings.Repeat(string(rune('A'+rng.Intn(6))), 1+rng.Intn(2)),
				Phone:   RandomPhone(rng),
				Address: "Apt",
			}
			if _, dup := live[r.Phone]; dup {
				continue
			}
			require.NoError(t, b.Add(r))
			live[r.Phone] = r
		}
		require.NoError(t, b.Verify(), "step %d", step)
		require.Equal(t, len(live), b.Len())
	}

	for phone, r := range live {
		got, ok := b.Find(PhoneOrder, phone)
		require.True(t, ok)
		require.Equal(t, r, got)
	}
}

func TestBook_DeleteRecordLeavesSharedKeys(t *testing.T) {
	b := NewBook(Options{})
	first := Record{Name: "Ann", Phone: "0851111111", Address: "Apt 1"}
	second := Record{Name: "Ann", Phone: "0852222222", Address: "Apt 2"}
	third := Record{Name: "Bob", Phone: "0852222222", Address: "Apt 3"}
	for _, r := range []Record{first, second, third} {
		require.NoError(t, b.Add(r))
	}

	_, ok := b.Find(NameOrder, "Ann")
	require.True(t, ok)

	require.True(t, b.DeleteRecord(second))
	require.Equal(t, 2, b.Len())
	require.NoError(t, b.Verify())

	r, ok := b.Find(NameOrder, "Ann")
	require.True(t, ok)
	require.Equal(t, first, r)
	r, ok = b.Find(PhoneOrder, "0852222222")
	require.True(t, ok)
	require.Equal(t, third, r)

	require.False(t, b.DeleteRecord(second), "second delete of the same record")
	require.False(t, b.DeleteRecord(Record{Name: "Ann", Phone: "0851111111", Address: "elsewhere"}))
	require.Equal(t, 2, b.Len())
}

func TestBook_DeleteLogsTreesOutOfStep(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	b := sampleBook(t)
	// Bypass the Book and drop Mary from the phone tree only.
	require.True(t, b.Tree(PhoneOrder).Delete("0856776227"))
	require.Error(t, b.Verify())

	r, ok := b.Delete(NameOrder, "Mary")
	require.True(t, ok)
	require.Equal(t, "0856776227", r.Phone)
	require.Contains(t, buf.String(), "out of step")
	require.NoError(t, b.Verify())

	buf.Reset()
	b.Tree(NameOrder).Delete("Zed")
	require.True(t, b.DeleteRecord(Record{Name: "Zed", Phone: "0890402726", Address: "Apt 9"}))
	require.Contains(t, buf.String(), "only one tree")
	require.NoError(t, b.Verify())
}

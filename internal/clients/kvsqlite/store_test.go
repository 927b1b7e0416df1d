package kvsqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"max.ks1230/expense-tracker/internal/model/kv"
)

type StoreSuite struct {
	suite.Suite
	store *Store
}

func (s *StoreSuite) SetupTest() {
	store, err := Open(":memory:")
	require.NoError(s.T(), err)
	s.store = store
}

func (s *StoreSuite) TearDownTest() {
	s.store.Close()
}

func (s *StoreSuite) TestGetMissingKey() {
	_, ok, err := s.store.Get(context.Background(), "missing")
	s.NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestSetOverwritesAndDeleteRemoves() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, "k", []byte("one")))
	s.Require().NoError(s.store.Set(ctx, "k", []byte("two")))

	v, ok, err := s.store.Get(ctx, "k")
	s.NoError(err)
	s.True(ok)
	s.Equal("two", string(v))

	s.Require().NoError(s.store.Delete(ctx, "k"))
	_, ok, err = s.store.Get(ctx, "k")
	s.NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestBacksReactiveValue() {
	ctx := context.Background()
	first := kv.New(ctx, s.store, "total", 0)
	s.Require().NoError(first.WaitLoaded(ctx))
	s.Require().NoError(first.Set(ctx, 42))

	second := kv.New(ctx, s.store, "total", 0)
	s.Require().NoError(second.WaitLoaded(ctx))
	s.Equal(42, second.Get())
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/phpshell/protoreg/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPrototypeSource is a mock implementation of ports.PrototypeSource.
type MockPrototypeSource struct {
	mock.Mock
}

func (m *MockPrototypeSource) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPrototypeSource) Load(ctx context.Context) (*entities.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Table), args.Error(1)
}

func TestNew_LoadsSourcesInOrder(t *testing.T) {
	ctx := context.Background()

	base := new(MockPrototypeSource)
	base.On("Name").Return("base")
	base.On("Load", ctx).Return(&entities.Table{Format: "1.0.0", Prototypes: []entities.Prototype{
		{Key: "strlen", Return: "int"},
	}}, nil).Once()

	site := new(MockPrototypeSource)
	site.On("Name").Return("site")
	site.On("Load", ctx).Return(&entities.Table{Format: "1.0.0", Prototypes: []entities.Prototype{
		{Key: "strlen", Return: "integer"},
		{Key: "Site::render", Return: "string"},
	}}, nil).Once()

	reg, err := New(ctx, WithSource(base), WithSource(site), WithDuplicatePolicy(LastWins))
	require.NoError(t, err)

	p, ok := reg.Lookup("strlen")
	require.True(t, ok)
	assert.Equal(t, "integer", p.Return)
	assert.Equal(t, []string{"Site::render", "strlen"}, reg.Names())

	base.AssertExpectations(t)
	site.AssertExpectations(t)
}

func TestNew_StopsAtFirstFailingSource(t *testing.T) {
	ctx := context.Background()
	loadErr := errors.New("disk on fire")

	broken := new(MockPrototypeSource)
	broken.On("Load", ctx).Return(nil, loadErr).Once()

	never := new(MockPrototypeSource)

	reg, err := New(ctx, WithSource(broken), WithSource(never))
	require.ErrorIs(t, err, loadErr)
	assert.Nil(t, reg)

	broken.AssertExpectations(t)
	never.AssertNotCalled(t, "Load", mock.Anything)
}

func TestNew_NilTable(t *testing.T) {
	ctx := context.Background()

	empty := new(MockPrototypeSource)
	empty.On("Name").Return("empty")
	empty.On("Load", ctx).Return(nil, nil).Once()

	reg, err := New(ctx, WithSource(empty))
	require.NoError(t, err)
	assert.Zero(t, reg.Len())
}

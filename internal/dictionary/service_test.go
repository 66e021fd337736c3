package dictionary_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/wordbook/internal/apperror"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	mock_dictionary "github.com/at-ishikawa/wordbook/internal/mocks/dictionary"
)

func ptr[T any](v T) *T {
	return &v
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		in       dictionary.Input
		setup    func(repo *mock_dictionary.MockDictionaryRepository)
		wantName string
		wantErr  error
		wantKind apperror.Kind
	}{
		{
			name: "creates a trimmed dictionary",
			in:   dictionary.Input{Name: " Spanish ", Description: "basics"},
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().ExistsByName(gomock.Any(), "u1", "Spanish", "").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *dictionary.Dictionary) error {
						assert.NoError(t, uuid.Validate(d.ID))
						assert.Equal(t, "u1", d.OwnerID)
						assert.Equal(t, "basics", d.Description)
						assert.Zero(t, d.WordCount)
						assert.False(t, d.CreatedAt.IsZero())
						return nil
					})
			},
			wantName: "Spanish",
		},
		{
			name: "duplicate name for the owner",
			in:   dictionary.Input{Name: "spanish"},
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().ExistsByName(gomock.Any(), "u1", "spanish", "").Return(true, nil)
			},
			wantErr: dictionary.ErrNameTaken,
		},
		{
			name: "unique index catches a concurrent create",
			in:   dictionary.Input{Name: "Spanish"},
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().ExistsByName(gomock.Any(), "u1", "Spanish", "").Return(false, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert dictionary: %w", &pq.Error{Code: "23505"}))
			},
			wantErr: dictionary.ErrNameTaken,
		},
		{
			name:     "blank name",
			in:       dictionary.Input{Name: "   "},
			setup:    func(repo *mock_dictionary.MockDictionaryRepository) {},
			wantKind: apperror.KindValidation,
		},
		{
			name:     "name too long",
			in:       dictionary.Input{Name: strings.Repeat("a", 101)},
			setup:    func(repo *mock_dictionary.MockDictionaryRepository) {},
			wantKind: apperror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_dictionary.NewMockDictionaryRepository(ctrl)
			tt.setup(repo)

			got, err := dictionary.NewService(repo).Create(context.Background(), "u1", tt.in)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantKind != apperror.KindInternal:
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, got.Name)
			}
		})
	}
}

func TestService_Authorize(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name    string
		id      string
		setup   func(repo *mock_dictionary.MockDictionaryRepository)
		wantErr error
	}{
		{
			name: "owned",
			id:   id,
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().FindByID(gomock.Any(), "u1", id).Return(&dictionary.Dictionary{ID: id, OwnerID: "u1"}, nil)
			},
		},
		{
			name: "missing or owned by someone else",
			id:   id,
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().FindByID(gomock.Any(), "u1", id).Return(nil, fmt.Errorf("load dictionary: %w", sql.ErrNoRows))
			},
			wantErr: dictionary.ErrNotFound,
		},
		{
			name:    "malformed id",
			id:      "../etc",
			setup:   func(repo *mock_dictionary.MockDictionaryRepository) {},
			wantErr: dictionary.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_dictionary.NewMockDictionaryRepository(ctrl)
			tt.setup(repo)

			got, err := dictionary.NewService(repo).Authorize(context.Background(), "u1", tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
		})
	}
}

func TestService_Update(t *testing.T) {
	id := uuid.NewString()
	existing := func() *dictionary.Dictionary {
		return &dictionary.Dictionary{ID: id, OwnerID: "u1", Name: "Spanish", Description: "old", WordCount: 4}
	}

	tests := []struct {
		name     string
		patch    dictionary.Patch
		setup    func(repo *mock_dictionary.MockDictionaryRepository)
		want     *dictionary.Dictionary
		wantErr  error
		wantKind apperror.Kind
	}{
		{
			name:  "only description changes",
			patch: dictionary.Patch{Description: ptr("new")},
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().FindByID(gomock.Any(), "u1", id).Return(existing(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: &dictionary.Dictionary{ID: id, OwnerID: "u1", Name: "Spanish", Description: "new", WordCount: 4},
		},
		{
			name:  "changing only the case of the name skips the duplicate check",
			patch: dictionary.Patch{Name: ptr("SPANISH")},
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().FindByID(gomock.Any(), "u1", id).Return(existing(), nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			want: &dictionary.Dictionary{ID: id, OwnerID: "u1", Name: "SPANISH", Description: "old", WordCount: 4},
		},
		{
			name:  "rename onto another dictionary",
			patch: dictionary.Patch{Name: ptr("French")},
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().FindByID(gomock.Any(), "u1", id).Return(existing(), nil)
				repo.EXPECT().ExistsByName(gomock.Any(), "u1", "French", id).Return(true, nil)
			},
			wantErr: dictionary.ErrNameTaken,
		},
		{
			name:     "empty name",
			patch:    dictionary.Patch{Name: ptr(" ")},
			setup:    func(repo *mock_dictionary.MockDictionaryRepository) {},
			wantKind: apperror.KindValidation,
		},
		{
			name:  "not owned",
			patch: dictionary.Patch{Description: ptr("new")},
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().FindByID(gomock.Any(), "u1", id).Return(nil, sql.ErrNoRows)
			},
			wantErr: dictionary.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_dictionary.NewMockDictionaryRepository(ctrl)
			tt.setup(repo)

			got, err := dictionary.NewService(repo).Update(context.Background(), "u1", id, tt.patch)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantKind != apperror.KindInternal:
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			default:
				require.NoError(t, err)
				assert.False(t, got.UpdatedAt.IsZero())
				got.UpdatedAt = tt.want.UpdatedAt
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestService_Delete(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name    string
		setup   func(repo *mock_dictionary.MockDictionaryRepository)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().Delete(gomock.Any(), "u1", id).Return(nil)
			},
		},
		{
			name: "not owned",
			setup: func(repo *mock_dictionary.MockDictionaryRepository) {
				repo.EXPECT().Delete(gomock.Any(), "u1", id).Return(fmt.Errorf("delete dictionary: %w", sql.ErrNoRows))
			},
			wantErr: dictionary.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_dictionary.NewMockDictionaryRepository(ctrl)
			tt.setup(repo)

			err := dictionary.NewService(repo).Delete(context.Background(), "u1", id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_dictionary.NewMockDictionaryRepository(ctrl)
	repo.EXPECT().FindByOwner(gomock.Any(), "u1").Return([]dictionary.Dictionary{{Name: "French"}, {Name: "Spanish"}}, nil)

	got, err := dictionary.NewService(repo).List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

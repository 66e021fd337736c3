package server

import (
	"context"
	"time"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/transfer"
	"github.com/at-ishikawa/wordbook/internal/user"
	"github.com/at-ishikawa/wordbook/internal/word"
)

//go:generate mockgen -source=services.go -destination=../mocks/server/mock_services.go -package=mock_server

type UserService interface {
	Register(ctx context.Context, in user.Registration) (*user.User, error)
	Verify(ctx context.Context, username, password string) (*user.User, error)
	ChangePassword(ctx context.Context, userID string, in user.PasswordChange) error
	Get(ctx context.Context, userID string) (*user.User, error)
}

type TokenService interface {
	Issue(userID string) (string, time.Time, error)
	Validate(token string) (string, error)
}

type DictionaryService interface {
	Create(ctx context.Context, ownerID string, in dictionary.Input) (*dictionary.Dictionary, error)
	List(ctx context.Context, ownerID string) ([]dictionary.Dictionary, error)
	Get(ctx context.Context, ownerID, id string) (*dictionary.Dictionary, error)
	Update(ctx context.Context, ownerID, id string, patch dictionary.Patch) (*dictionary.Dictionary, error)
	Delete(ctx context.Context, ownerID, id string) error
}

type WordService interface {
	Create(ctx context.Context, ownerID, dictionaryID string, f word.Fields) (*word.Word, error)
	List(ctx context.Context, ownerID, dictionaryID string, page word.Page) ([]word.Word, error)
	Get(ctx context.Context, ownerID, dictionaryID, wordID string) (*word.Word, error)
	Update(ctx context.Context, ownerID, dictionaryID, wordID string, patch word.Patch) (*word.Word, error)
	Delete(ctx context.Context, ownerID, dictionaryID, wordID string) error
	Search(ctx context.Context, ownerID, dictionaryID, query string, searchType word.SearchType) ([]word.Word, error)
	Categories(ctx context.Context, ownerID, dictionaryID string) ([]string, error)
}

type TransferService interface {
	Import(ctx context.Context, ownerID, dictionaryID, format string, data []byte) (*transfer.Result, error)
	Export(ctx context.Context, ownerID, dictionaryID, format string) (*transfer.Payload, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

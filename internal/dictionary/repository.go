package dictionary

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordbook/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary

// DictionaryRepository defines operations for managing dictionaries.
// Every method is scoped by owner; a dictionary of another owner behaves as missing.
type DictionaryRepository interface {
	FindByOwner(ctx context.Context, ownerID string) ([]Dictionary, error)
	FindByID(ctx context.Context, ownerID, id string) (*Dictionary, error)
	ExistsByName(ctx context.Context, ownerID, name, excludeID string) (bool, error)
	Create(ctx context.Context, d *Dictionary) error
	Update(ctx context.Context, d *Dictionary) error
	Delete(ctx context.Context, ownerID, id string) error
}

// DBDictionaryRepository implements DictionaryRepository over a SQL database.
type DBDictionaryRepository struct {
	db *sqlx.DB
}

// NewDBDictionaryRepository creates a new DBDictionaryRepository.
func NewDBDictionaryRepository(db *sqlx.DB) *DBDictionaryRepository {
	return &DBDictionaryRepository{db: db}
}

const selectDictionaries = `SELECT d.id, d.owner_id, d.name, d.description, d.created_at, d.updated_at,
	(SELECT COUNT(*) FROM words w WHERE w.dictionary_id = d.id) AS word_count
	FROM dictionaries d`

func (r *DBDictionaryRepository) FindByOwner(ctx context.Context, ownerID string) ([]Dictionary, error) {
	dictionaries := []Dictionary{}
	query := r.db.Rebind(selectDictionaries + " WHERE d.owner_id = ? ORDER BY d.name")
	if err := r.db.SelectContext(ctx, &dictionaries, query, ownerID); err != nil {
		return nil, fmt.Errorf("load dictionaries: %w", err)
	}
	return dictionaries, nil
}

func (r *DBDictionaryRepository) FindByID(ctx context.Context, ownerID, id string) (*Dictionary, error) {
	var d Dictionary
	query := r.db.Rebind(selectDictionaries + " WHERE d.id = ? AND d.owner_id = ?")
	if err := r.db.GetContext(ctx, &d, query, id, ownerID); err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	return &d, nil
}

// ExistsByName compares names case-insensitively. excludeID may be empty.
func (r *DBDictionaryRepository) ExistsByName(ctx context.Context, ownerID, name, excludeID string) (bool, error) {
	var count int
	query := r.db.Rebind("SELECT COUNT(*) FROM dictionaries WHERE owner_id = ? AND LOWER(name) = LOWER(?) AND id <> ?")
	if err := r.db.GetContext(ctx, &count, query, ownerID, name, excludeID); err != nil {
		return false, fmt.Errorf("count dictionaries by name: %w", err)
	}
	return count > 0, nil
}

func (r *DBDictionaryRepository) Create(ctx context.Context, d *Dictionary) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO dictionaries (id, owner_id, name, description, created_at, updated_at)
		VALUES (:id, :owner_id, :name, :description, :created_at, :updated_at)`, d)
	if err != nil {
		return fmt.Errorf("insert dictionary: %w", err)
	}
	return nil
}

func (r *DBDictionaryRepository) Update(ctx context.Context, d *Dictionary) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE dictionaries SET name = :name, description = :description, updated_at = :updated_at
		WHERE id = :id AND owner_id = :owner_id`, d)
	if err != nil {
		return fmt.Errorf("update dictionary: %w", err)
	}
	return nil
}

// Delete removes the dictionary and all of its words in one transaction.
// It returns an error wrapping sql.ErrNoRows when the owner has no such dictionary.
func (r *DBDictionaryRepository) Delete(ctx context.Context, ownerID, id string) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		deleteWords := tx.Rebind(`DELETE FROM words WHERE dictionary_id IN
			(SELECT id FROM dictionaries WHERE id = ? AND owner_id = ?)`)
		if _, err := tx.ExecContext(ctx, deleteWords, id, ownerID); err != nil {
			return fmt.Errorf("delete dictionary words: %w", err)
		}

		result, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM dictionaries WHERE id = ? AND owner_id = ?"), id, ownerID)
		if err != nil {
			return fmt.Errorf("delete dictionary: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete dictionary: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("delete dictionary: %w", sql.ErrNoRows)
		}
		return nil
	})
}

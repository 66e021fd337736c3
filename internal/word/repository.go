package word

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/word/mock_repository.go -package=mock_word

// WordRepository defines operations for managing the words of a dictionary.
// Ownership is checked by the caller; every method is scoped by dictionary ID.
type WordRepository interface {
	FindByDictionary(ctx context.Context, dictionaryID string, page Page) ([]Word, error)
	FindAllByDictionary(ctx context.Context, dictionaryID string) ([]Word, error)
	FindByID(ctx context.Context, dictionaryID, id string) (*Word, error)
	Search(ctx context.Context, dictionaryID, query string, searchType SearchType) ([]Word, error)
	ExistsByWord(ctx context.Context, dictionaryID, headword, excludeID string) (bool, error)
	Create(ctx context.Context, w *Word) error
	Update(ctx context.Context, w *Word) error
	Delete(ctx context.Context, dictionaryID, id string) error
	Categories(ctx context.Context, dictionaryID string) ([]string, error)
}

// DBWordRepository implements WordRepository over a SQL database.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

const selectWords = `SELECT id, dictionary_id, word, definition, pronunciation, examples, categories, notes, created_at, updated_at
	FROM words`

// likeEscape is the ESCAPE character used in search patterns.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

func (r *DBWordRepository) FindByDictionary(ctx context.Context, dictionaryID string, page Page) ([]Word, error) {
	words := []Word{}
	query := r.db.Rebind(selectWords + " WHERE dictionary_id = ? ORDER BY word LIMIT ? OFFSET ?")
	if err := r.db.SelectContext(ctx, &words, query, dictionaryID, page.Limit, page.Skip); err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	return words, nil
}

func (r *DBWordRepository) FindAllByDictionary(ctx context.Context, dictionaryID string) ([]Word, error) {
	words := []Word{}
	query := r.db.Rebind(selectWords + " WHERE dictionary_id = ? ORDER BY word")
	if err := r.db.SelectContext(ctx, &words, query, dictionaryID); err != nil {
		return nil, fmt.Errorf("load all words: %w", err)
	}
	return words, nil
}

func (r *DBWordRepository) FindByID(ctx context.Context, dictionaryID, id string) (*Word, error) {
	var w Word
	query := r.db.Rebind(selectWords + " WHERE id = ? AND dictionary_id = ?")
	if err := r.db.GetContext(ctx, &w, query, id, dictionaryID); err != nil {
		return nil, fmt.Errorf("load word: %w", err)
	}
	return &w, nil
}

// Search matches query as a case-insensitive substring. LIKE wildcards in query match literally.
func (r *DBWordRepository) Search(ctx context.Context, dictionaryID, query string, searchType SearchType) ([]Word, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	wordMatch := "LOWER(word) LIKE ? ESCAPE '" + likeEscape + "'"
	definitionMatch := "LOWER(definition) LIKE ? ESCAPE '" + likeEscape + "'"

	var condition string
	args := []any{dictionaryID}
	switch searchType {
	case SearchWord:
		condition = wordMatch
		args = append(args, pattern)
	case SearchDefinition:
		condition = definitionMatch
		args = append(args, pattern)
	case SearchBoth:
		condition = "(" + wordMatch + " OR " + definitionMatch + ")"
		args = append(args, pattern, pattern)
	default:
		return nil, fmt.Errorf("search words: unknown search type %q", searchType)
	}

	words := []Word{}
	q := r.db.Rebind(selectWords + " WHERE dictionary_id = ? AND " + condition + " ORDER BY word")
	if err := r.db.SelectContext(ctx, &words, q, args...); err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}
	return words, nil
}

func (r *DBWordRepository) ExistsByWord(ctx context.Context, dictionaryID, headword, excludeID string) (bool, error) {
	var count int
	query := r.db.Rebind("SELECT COUNT(*) FROM words WHERE dictionary_id = ? AND word = ? AND id <> ?")
	if err := r.db.GetContext(ctx, &count, query, dictionaryID, headword, excludeID); err != nil {
		return false, fmt.Errorf("count words: %w", err)
	}
	return count > 0, nil
}

func (r *DBWordRepository) Create(ctx context.Context, w *Word) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO words (id, dictionary_id, word, definition, pronunciation, examples, categories, notes, created_at, updated_at)
		VALUES (:id, :dictionary_id, :word, :definition, :pronunciation, :examples, :categories, :notes, :created_at, :updated_at)`, w)
	if err != nil {
		return fmt.Errorf("insert word: %w", err)
	}
	return nil
}

func (r *DBWordRepository) Update(ctx context.Context, w *Word) error {
	_, err := r.db.NamedExecContext(ctx,
		`UPDATE words SET word = :word, definition = :definition, pronunciation = :pronunciation,
		examples = :examples, categories = :categories, notes = :notes, updated_at = :updated_at
		WHERE id = :id AND dictionary_id = :dictionary_id`, w)
	if err != nil {
		return fmt.Errorf("update word: %w", err)
	}
	return nil
}

// Delete returns an error wrapping sql.ErrNoRows when the dictionary has no such word.
func (r *DBWordRepository) Delete(ctx context.Context, dictionaryID, id string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM words WHERE id = ? AND dictionary_id = ?"), id, dictionaryID)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete word: %w", sql.ErrNoRows)
	}
	return nil
}

// Categories returns the distinct non-empty categories used in the dictionary, sorted.
func (r *DBWordRepository) Categories(ctx context.Context, dictionaryID string) ([]string, error) {
	var lists []StringList
	query := r.db.Rebind("SELECT categories FROM words WHERE dictionary_id = ?")
	if err := r.db.SelectContext(ctx, &lists, query, dictionaryID); err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	seen := make(map[string]bool)
	categories := []string{}
	for _, list := range lists {
		for _, c := range list {
			if c == "" || seen[c] {
				continue
			}
			seen[c] = true
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

package exam_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mushikui/mushikui-quiz/internal/content"
	"github.com/mushikui/mushikui-quiz/internal/exam"
)

const storeDoc = `## テスト分類

1. 空欄は**____**です。

### 回答集

## テスト分類

1. **正解**
`

func writeSubject(t *testing.T, dir, id, doc string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, id+".md"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func storePacks() []content.SubjectPack {
	return []content.SubjectPack{
		clozePack(content.CategoryConfig{ID: "test-cat", Name: "テスト分類", Start: 1, End: 1}),
	}
}

func TestStoreLookups(t *testing.T) {
	dir := t.TempDir()
	writeSubject(t, dir, "test-subject", storeDoc)
	s := exam.NewStore(dir, exam.LoadOnce, storePacks())

	subs := s.Subjects()
	if len(subs) != 1 || subs[0].ID != "test-subject" || subs[0].CategoryCount != 1 {
		t.Fatalf("catalog: %+v", subs)
	}
	if _, err := s.Subject("test-subject"); err != nil {
		t.Errorf("Subject: %v", err)
	}
	if _, err := s.Subject("nope"); !errors.Is(err, exam.ErrSubjectNotFound) {
		t.Errorf("unknown subject: %v", err)
	}

	c, err := s.Category("test-cat")
	if err != nil {
		t.Fatalf("Category: %v", err)
	}
	if len(c.Questions) != 1 {
		t.Fatalf("questions: %+v", c.Questions)
	}
	if _, err := s.Category("nope"); !errors.Is(err, exam.ErrCategoryNotFound) {
		t.Errorf("unknown category: %v", err)
	}

	if _, err := s.Question("test-cat", "test-cat-1"); err != nil {
		t.Errorf("Question: %v", err)
	}
	if _, err := s.Question("test-cat", "test-cat-99"); !errors.Is(err, exam.ErrQuestionNotFound) {
		t.Errorf("unknown question: %v", err)
	}
}

// A category heading with no question lines under it parses to zero
// questions; looking it up is an error rather than an empty page.
func TestStoreEmptyCategory(t *testing.T) {
	dir := t.TempDir()
	writeSubject(t, dir, "test-subject", "## テスト分類\n\n説明文だけで問題がない。\n")
	s := exam.NewStore(dir, exam.LoadOnce, storePacks())

	if _, err := s.Category("test-cat"); !errors.Is(err, exam.ErrEmptyCategory) {
		t.Errorf("got %v, want ErrEmptyCategory", err)
	}
}

// A subject whose file is missing is skipped; the rest of the catalog
// still loads.
func TestStoreMissingFileIsolated(t *testing.T) {
	dir := t.TempDir()
	writeSubject(t, dir, "test-subject", storeDoc)
	packs := append(storePacks(), content.SubjectPack{
		Subject: content.SubjectConfig{ID: "absent", Name: "欠落"},
		Format:  content.FormatCloze,
	})
	s := exam.NewStore(dir, exam.LoadOnce, packs)

	subs := s.Subjects()
	if len(subs) != 1 || subs[0].ID != "test-subject" {
		t.Fatalf("catalog: %+v", subs)
	}
}

func TestStoreReloadPolicy(t *testing.T) {
	dir := t.TempDir()
	writeSubject(t, dir, "test-subject", storeDoc)

	cached := exam.NewStore(dir, exam.LoadOnce, storePacks())
	live := exam.NewStore(dir, exam.AlwaysReload, storePacks())
	if _, err := cached.Subject("test-subject"); err != nil {
		t.Fatal(err)
	}
	if _, err := live.Subject("test-subject"); err != nil {
		t.Fatal(err)
	}

	// change the answer key on disk
	changed := `## テスト分類

1. 空欄は**____**です。

### 回答集

## テスト分類

1. **別解**
`
	writeSubject(t, dir, "test-subject", changed)

	q, err := cached.Question("test-cat", "test-cat-1")
	if err != nil {
		t.Fatal(err)
	}
	if q.Blanks[0].Answer != "正解" {
		t.Errorf("LoadOnce picked up the edit: %q", q.Blanks[0].Answer)
	}
	q, err = live.Question("test-cat", "test-cat-1")
	if err != nil {
		t.Fatal(err)
	}
	if q.Blanks[0].Answer != "別解" {
		t.Errorf("AlwaysReload served stale content: %q", q.Blanks[0].Answer)
	}
}

package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"togari/internal/assessment"
	"togari/internal/utils"
)

// sessionFile is the single fixed document every session reads and
// writes. There is exactly one assessment per data directory.
const sessionFile = "assessment.json"

// document is the on-disk blob shape. Answer values are "yes", "no" or
// null for unset, mirroring what the store holds in memory.
type document struct {
	Answers       map[string]*string       `json:"answers"`
	WorksheetData assessment.WorksheetData `json:"worksheetData"`
}

// Store persists the session snapshot as one JSON file under baseDir.
type Store struct {
	baseDir string
	logger  *utils.Logger
}

// New creates a store rooted at baseDir, expanding a leading "~/" and
// creating the directory if needed.
func New(baseDir string) *Store {
	if strings.HasPrefix(baseDir, "~/") {
		home, _ := os.UserHomeDir()
		baseDir = filepath.Join(home, baseDir[2:])
	}
	_ = os.MkdirAll(baseDir, 0755) // Ignore error - directory may already exist
	return &Store{
		baseDir: baseDir,
		logger:  utils.NewComponentLogger("SessionFileStore"),
	}
}

// Path returns the session file location.
func (s *Store) Path() string {
	return filepath.Join(s.baseDir, sessionFile)
}

// Load reads the persisted snapshot. A missing file means no prior
// session and yields empty defaults. A malformed blob is treated the
// same way (logged, never surfaced), and a partial document merges
// field-by-field over the defaults. Answers stored under ids outside
// the question bank are dropped.
func (s *Store) Load() assessment.Snapshot {
	snapshot := assessment.NewSnapshot()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read session file %s: %v", s.Path(), err)
		}
		return snapshot
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("Discarding malformed session file %s: %v. Preview: %s",
			s.Path(), err, previewJSON(data))
		return snapshot
	}

	known := make(map[string]struct{}, assessment.QuestionCount())
	for _, q := range assessment.Questions() {
		known[q.ID] = struct{}{}
	}
	for id, value := range doc.Answers {
		if _, ok := known[id]; !ok {
			s.logger.Warn("Dropping stored answer for unknown question id %q", id)
			continue
		}
		if value == nil {
			continue
		}
		answer := assessment.Answer(*value)
		if !answer.Set() {
			s.logger.Warn("Dropping malformed stored answer %q for question %q", *value, id)
			continue
		}
		snapshot.Answers[id] = answer
	}

	snapshot.Worksheet = doc.WorksheetData
	if role := snapshot.Worksheet.RoleChoice; role != assessment.RoleSteering &&
		role != assessment.RolePolishing {
		snapshot.Worksheet.RoleChoice = assessment.RoleNone
	}

	return snapshot
}

// Save writes the snapshot, replacing any previous document. Writes are
// synchronous; the payload is a few hundred bytes.
func (s *Store) Save(snapshot assessment.Snapshot) error {
	doc := document{
		Answers:       make(map[string]*string, assessment.QuestionCount()),
		WorksheetData: snapshot.Worksheet,
	}
	for _, q := range assessment.Questions() {
		if answer := snapshot.Answers[q.ID]; answer.Set() {
			value := string(answer)
			doc.Answers[q.ID] = &value
		} else {
			doc.Answers[q.ID] = nil
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func previewJSON(data []byte) string {
	const maxPreview = 512
	preview := strings.TrimSpace(string(data))
	preview = strings.ReplaceAll(preview, "\n", " ")
	preview = strings.ReplaceAll(preview, "\t", " ")
	if len(preview) > maxPreview {
		preview = preview[:maxPreview] + "... (truncated)"
	}
	return preview
}

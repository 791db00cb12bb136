package service

import (
	"context"
	"errors"
	"sync"

	"devlabs-intake-be/internal/entity"
	"devlabs-intake-be/internal/repository/specification"
)

func byIDSpec(id string) specification.Specification {
	return specification.ByID{ID: id}
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type sentMessage struct {
	To   int64
	Text string
}

// fakeGateway records every outbound message and can refuse delivery to
// selected recipients.
type fakeGateway struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[int64]bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{failFor: make(map[int64]bool)}
}

func (g *fakeGateway) SendText(ctx context.Context, recipientID int64, text string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failFor[recipientID] {
		return errors.New("delivery refused")
	}
	g.sent = append(g.sent, sentMessage{To: recipientID, Text: text})
	return nil
}

func (g *fakeGateway) messagesTo(recipientID int64) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []string
	for _, m := range g.sent {
		if m.To == recipientID {
			out = append(out, m.Text)
		}
	}
	return out
}

func (g *fakeGateway) lastTo(recipientID int64) string {
	msgs := g.messagesTo(recipientID)
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

type fakeProjectRepo struct {
	mu      sync.Mutex
	order   []string
	byID    map[string]*entity.Project
	saveErr error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{byID: make(map[string]*entity.Project)}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *project
	r.byID[project.Id] = &cp
	r.order = append(r.order, project.Id)
	return nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *project
	r.byID[project.Id] = &cp
	return nil
}

func (r *fakeProjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if p, found := r.byID[byID.ID]; found {
				cp := *p
				return &cp, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Project, 0, len(r.order))
	// Newest first, mirroring the created_at DESC listing.
	for i := len(r.order) - 1; i >= 0; i-- {
		cp := *r.byID[r.order[i]]
		out = append(out, &cp)
	}
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			if p.Offset > 0 && p.Offset < len(out) {
				out = out[p.Offset:]
			}
			if p.Limit > 0 && p.Limit < len(out) {
				out = out[:p.Limit]
			}
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

type fakePreferenceRepo struct {
	mu      sync.Mutex
	langs   map[int64]string
	msgs    map[int64][]string
	userIds []int64
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{
		langs: make(map[int64]string),
		msgs:  make(map[int64][]string),
	}
}

func (r *fakePreferenceRepo) GetLanguage(ctx context.Context, userId int64, fallback string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lang, ok := r.langs[userId]; ok {
		return lang, nil
	}
	return fallback, nil
}

func (r *fakePreferenceRepo) SetLanguage(ctx context.Context, userId int64, language string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.langs[userId] = language
	return nil
}

func (r *fakePreferenceRepo) AppendMessage(ctx context.Context, userId int64, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs[userId] = append(r.msgs[userId], text)
	return nil
}

func (r *fakePreferenceRepo) GetMessages(ctx context.Context, userId int64) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs[userId]...), nil
}

func (r *fakePreferenceRepo) ClearMessages(ctx context.Context, userId int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.msgs, userId)
	return nil
}

func (r *fakePreferenceRepo) ListUserIds(ctx context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.userIds...), nil
}

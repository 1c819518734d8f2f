package service

import (
	"context"
	"testing"
	"time"

	"prokontra/internal/modkit/repokit"
	perr "prokontra/internal/platform/errors"
	"prokontra/internal/platform/store"
	"prokontra/internal/services/api/reasons/domain"
	"prokontra/internal/services/api/reasons/repo"
	topicsdom "prokontra/internal/services/api/topics/domain"
	votesdom "prokontra/internal/services/api/votes/domain"
	identdom "prokontra/internal/services/identity/domain"
)

//
// fakes
//

type fakeRepo struct {
	rows map[string]repo.RowReason
	seq  time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rows: map[string]repo.RowReason{},
		seq:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) Insert(_ context.Context, row repo.RowReason) error {
	f.seq = f.seq.Add(time.Second)
	row.CreatedAt = f.seq
	f.rows[row.ID] = row
	return nil
}

func (f *fakeRepo) ByID(_ context.Context, id string) (repo.RowReason, error) {
	row, ok := f.rows[id]
	if !ok {
		return repo.RowReason{}, perr.ErrNotFound
	}
	return row, nil
}

func (f *fakeRepo) ListByTopic(_ context.Context, topicID string) ([]repo.RowReason, error) {
	var out []repo.RowReason
	for _, r := range f.rows {
		if r.TopicID == topicID && r.DeletedAt == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) HasActiveRoot(_ context.Context, topicID, accountID, anonKey string) (bool, error) {
	for _, r := range f.rows {
		if r.TopicID != topicID || r.ParentID != nil || r.DeletedAt != nil {
			continue
		}
		if accountID != "" && r.AccountID != nil && *r.AccountID == accountID {
			return true, nil
		}
		if anonKey != "" && r.AnonKey == anonKey {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) SetDeleted(_ context.Context, id string, deleted bool) (int64, error) {
	row, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	if deleted {
		if row.DeletedAt == nil {
			now := time.Now()
			row.DeletedAt = &now
		}
	} else {
		row.DeletedAt = nil
	}
	f.rows[id] = row
	return 1, nil
}

func (f *fakeRepo) SetFeatured(_ context.Context, id string, featured bool) (int64, error) {
	row, ok := f.rows[id]
	if !ok || row.DeletedAt != nil {
		return 0, nil
	}
	row.IsFeatured = featured
	f.rows[id] = row
	return 1, nil
}

type fakeTopics struct{ topic topicsdom.Topic }

func (f fakeTopics) Resolve(_ context.Context, slug string) (topicsdom.Topic, error) {
	if slug != "" && slug != f.topic.Slug {
		return topicsdom.Topic{}, perr.NotFoundf("topic %q not found", slug)
	}
	return f.topic, nil
}

func (f fakeTopics) Active(ctx context.Context) (topicsdom.Topic, error) {
	return f.Resolve(ctx, "")
}

type fakeScores struct {
	scores map[string]votesdom.Score
	mine   map[string]int
}

func (f fakeScores) ScoresFor(_ context.Context, ids []string) (map[string]votesdom.Score, error) {
	out := map[string]votesdom.Score{}
	for _, id := range ids {
		if s, ok := f.scores[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (f fakeScores) VotesOf(_ context.Context, _ identdom.Identity, ids []string) (map[string]int, error) {
	out := map[string]int{}
	for _, id := range ids {
		if v, ok := f.mine[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

type fakePolicy struct{ reject bool }

func (f fakePolicy) Check(context.Context, string) error {
	if f.reject {
		return perr.ContentPolicyf("contribution contains a banned word")
	}
	return nil
}

type noTx struct{}

func (noTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (noTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (noTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (noTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(noTx{})
}

type fixture struct {
	repo   *fakeRepo
	scores *fakeScores
	policy *fakePolicy
	svc    *Svc
}

func newFixture() *fixture {
	f := &fixture{
		repo:   newFakeRepo(),
		scores: &fakeScores{scores: map[string]votesdom.Score{}, mine: map[string]int{}},
		policy: &fakePolicy{},
	}
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f.repo })
	topics := fakeTopics{topic: topicsdom.Topic{ID: "topic-1", Slug: "cats-vs-dogs", IsActive: true}}
	f.svc = New(noTx{}, binder, topics, f.scores, f.policy)
	return f
}

func anonIdent(key string) identdom.Identity { return identdom.Identity{Anon: key} }

//
// create
//

func TestCreate_RootThenReplyAllowed(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	root, err := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "roots are good"})
	if err != nil {
		t.Fatalf("Create root: %v", err)
	}
	if root.TopicID != "topic-1" {
		t.Fatalf("unexpected topic: %+v", root)
	}

	// same actor may reply even though their root exists
	reply, err := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{
		Side: "pro", Body: "and here is more", ParentID: root.ID,
	})
	if err != nil {
		t.Fatalf("Create reply: %v", err)
	}
	row := fx.repo.rows[reply.ID]
	if row.ParentID == nil || *row.ParentID != root.ID {
		t.Fatalf("reply not linked to parent: %+v", row)
	}
}

func TestCreate_SecondRootConflicts(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	if _, err := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "first take"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "con", Body: "second take"})
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestCreate_DualIdentityBlocksBothHalves(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	// anonymous root posted before login
	if _, err := fx.svc.Create(ctx, anonIdent("anon-1"), domain.CreateInput{Side: "pro", Body: "posted anonymously"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// same person now authenticated, same cookie: still one root
	both := identdom.Identity{Anon: "anon-1", Account: "acct-1"}
	_, err := fx.svc.Create(ctx, both, domain.CreateInput{Side: "pro", Body: "posted again logged in"})
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("expected conflict through the anon half, got %v", err)
	}

	// and the account half blocks a fresh cookie too
	fresh := identdom.Identity{Anon: "anon-2", Account: "acct-2"}
	if _, err := fx.svc.Create(ctx, fresh, domain.CreateInput{Side: "con", Body: "account root"}); err != nil {
		t.Fatalf("Create account root: %v", err)
	}
	rotated := identdom.Identity{Anon: "anon-3", Account: "acct-2"}
	_, err = fx.svc.Create(ctx, rotated, domain.CreateInput{Side: "con", Body: "cookie rotated"})
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("expected conflict through the account half, got %v", err)
	}
}

func TestCreate_DeletedRootFreesTheSlot(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	first, err := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "will be removed"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := fx.svc.SetDeleted(ctx, first.ID, true); err != nil {
		t.Fatalf("SetDeleted: %v", err)
	}
	if _, err := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "fresh start"}); err != nil {
		t.Fatalf("Create after tombstone: %v", err)
	}
}

func TestCreate_BannedBodyRejected(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	fx.policy.reject = true

	_, err := fx.svc.Create(context.Background(), anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "something rude"})
	if !perr.IsCode(err, perr.ErrorCodeContentPolicy) {
		t.Fatalf("expected content policy error, got %v", err)
	}
}

func TestCreate_ParentChecks(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	t.Run("missing parent", func(t *testing.T) {
		_, err := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "orphan reply", ParentID: "ghost"})
		if !perr.IsCode(err, perr.ErrorCodeNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("deleted parent", func(t *testing.T) {
		root, err := fx.svc.Create(ctx, anonIdent("a2"), domain.CreateInput{Side: "pro", Body: "soon gone"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := fx.svc.SetDeleted(ctx, root.ID, true); err != nil {
			t.Fatalf("SetDeleted: %v", err)
		}
		_, err = fx.svc.Create(ctx, anonIdent("a3"), domain.CreateInput{Side: "pro", Body: "reply to tombstone", ParentID: root.ID})
		if !perr.IsCode(err, perr.ErrorCodeNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("parent on another topic", func(t *testing.T) {
		foreign := repo.RowReason{ID: "foreign-1", TopicID: "topic-999", Side: "pro", Body: "elsewhere", AnonKey: "x"}
		if err := fx.repo.Insert(ctx, foreign); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		_, err := fx.svc.Create(ctx, anonIdent("a4"), domain.CreateInput{Side: "pro", Body: "cross topic", ParentID: "foreign-1"})
		if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
			t.Fatalf("expected invalid argument, got %v", err)
		}
	})
}

//
// list
//

func TestList_PartitionsAndRanks(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	p1, _ := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "pro low"})
	p2, _ := fx.svc.Create(ctx, anonIdent("a2"), domain.CreateInput{Side: "pro", Body: "pro high"})
	c1, _ := fx.svc.Create(ctx, anonIdent("a3"), domain.CreateInput{Side: "con", Body: "con only"})

	fx.scores.scores[p1.ID] = votesdom.Score{ReasonID: p1.ID, Score: 1, Up: 1}
	fx.scores.scores[p2.ID] = votesdom.Score{ReasonID: p2.ID, Score: 5, Up: 5}

	board, err := fx.svc.List(ctx, anonIdent("viewer"), "cats-vs-dogs")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(board.Pro) != 2 || len(board.Con) != 1 {
		t.Fatalf("partition wrong: pro=%d con=%d", len(board.Pro), len(board.Con))
	}
	if board.Pro[0].ID != p2.ID || board.Pro[1].ID != p1.ID {
		t.Fatalf("pro side not score-ordered: %s then %s", board.Pro[0].ID, board.Pro[1].ID)
	}
	if board.Con[0].ID != c1.ID {
		t.Fatalf("con side wrong: %s", board.Con[0].ID)
	}
}

func TestList_FeaturedPinsAboveHigherScores(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	plain, _ := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "popular but plain"})
	pinned, _ := fx.svc.Create(ctx, anonIdent("a2"), domain.CreateInput{Side: "pro", Body: "editorial pick"})

	fx.scores.scores[plain.ID] = votesdom.Score{ReasonID: plain.ID, Score: 50, Up: 50}
	if err := fx.svc.SetFeatured(ctx, pinned.ID, true); err != nil {
		t.Fatalf("SetFeatured: %v", err)
	}

	board, err := fx.svc.List(ctx, anonIdent("viewer"), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if board.Pro[0].ID != pinned.ID {
		t.Fatalf("featured reason must rank first, got %s", board.Pro[0].ID)
	}
}

func TestList_TreeAssemblyDropsOrphans(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	root, _ := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "the root"})
	kept, _ := fx.svc.Create(ctx, anonIdent("a2"), domain.CreateInput{Side: "pro", Body: "kept reply", ParentID: root.ID})

	doomed, _ := fx.svc.Create(ctx, anonIdent("a3"), domain.CreateInput{Side: "pro", Body: "doomed parent"})
	orphan, _ := fx.svc.Create(ctx, anonIdent("a4"), domain.CreateInput{Side: "pro", Body: "soon orphaned", ParentID: doomed.ID})
	if err := fx.svc.SetDeleted(ctx, doomed.ID, true); err != nil {
		t.Fatalf("SetDeleted: %v", err)
	}

	board, err := fx.svc.List(ctx, anonIdent("viewer"), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	var flat []string
	var walk func(ns []*domain.Node)
	walk = func(ns []*domain.Node) {
		for _, n := range ns {
			flat = append(flat, n.ID)
			walk(n.Children)
		}
	}
	walk(board.Pro)
	walk(board.Con)

	has := func(id string) bool {
		for _, f := range flat {
			if f == id {
				return true
			}
		}
		return false
	}
	if !has(root.ID) || !has(kept.ID) {
		t.Fatalf("expected root and its reply in the board, got %v", flat)
	}
	if has(doomed.ID) || has(orphan.ID) {
		t.Fatalf("deleted parent and its orphan must not appear, got %v", flat)
	}
}

func TestList_YourVoteEcho(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	r1, _ := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "voted on"})
	r2, _ := fx.svc.Create(ctx, anonIdent("a2"), domain.CreateInput{Side: "con", Body: "not voted on"})

	fx.scores.mine[r1.ID] = -1

	board, err := fx.svc.List(ctx, anonIdent("viewer"), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got := board.Pro[0]; got.ID != r1.ID || got.YourVote == nil || *got.YourVote != -1 {
		t.Fatalf("expected your_vote -1 on %s, got %+v", r1.ID, got)
	}
	if got := board.Con[0]; got.ID != r2.ID || got.YourVote != nil {
		t.Fatalf("expected no your_vote on %s, got %+v", r2.ID, got)
	}
}

//
// moderation
//

func TestModeration_UnknownReasonIsNotFound(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	if err := fx.svc.SetDeleted(ctx, "ghost", true); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("SetDeleted: expected not found, got %v", err)
	}
	if err := fx.svc.SetFeatured(ctx, "ghost", true); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("SetFeatured: expected not found, got %v", err)
	}
}

func TestModeration_RestoreUndeletes(t *testing.T) {
	t.Parallel()

	fx := newFixture()
	ctx := context.Background()

	r, err := fx.svc.Create(ctx, anonIdent("a1"), domain.CreateInput{Side: "pro", Body: "flip flop"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := fx.svc.SetDeleted(ctx, r.ID, true); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := fx.svc.SetDeleted(ctx, r.ID, false); err != nil {
		t.Fatalf("restore: %v", err)
	}

	board, err := fx.svc.List(ctx, anonIdent("viewer"), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(board.Pro) != 1 || board.Pro[0].ID != r.ID {
		t.Fatalf("restored reason missing from board: %+v", board.Pro)
	}
}

// Package service contains the contribution ledger workflows
package service

import (
	"context"

	"github.com/google/uuid"

	"prokontra/internal/modkit/repokit"
	perr "prokontra/internal/platform/errors"
	policydom "prokontra/internal/services/api/policy/domain"
	"prokontra/internal/services/api/reasons/domain"
	"prokontra/internal/services/api/reasons/repo"
	topicsdom "prokontra/internal/services/api/topics/domain"
	votesdom "prokontra/internal/services/api/votes/domain"
	identdom "prokontra/internal/services/identity/domain"
)

// Service defines the service contract for reasons
type Service interface {
	domain.ServicePort
	domain.ModerationPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	topics topicsdom.ServicePort
	scores votesdom.ScoresPort
	policy policydom.CheckerPort
}

// New creates a new reasons service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	topics topicsdom.ServicePort,
	scores votesdom.ScoresPort,
	policy policydom.CheckerPort,
) *Svc {
	if db == nil {
		panic("reasons.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reasons.Service requires a non nil Repo binder")
	}
	if topics == nil {
		panic("reasons.Service requires a topics port")
	}
	if scores == nil {
		panic("reasons.Service requires a scores port")
	}
	if policy == nil {
		panic("reasons.Service requires a policy checker")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, topics: topics, scores: scores, policy: policy}
}

// Create posts a root reason or a reply under the resolved topic
func (s *Svc) Create(ctx context.Context, ident identdom.Identity, in domain.CreateInput) (domain.Created, error) {
	if ident.Anon == "" {
		return domain.Created{}, perr.Unauthorizedf("no identity on request")
	}

	topic, err := s.topics.Resolve(ctx, in.Slug)
	if err != nil {
		return domain.Created{}, err
	}

	if err := s.policy.Check(ctx, in.Body); err != nil {
		return domain.Created{}, err
	}

	var parentID *string
	if in.ParentID != "" {
		parent, err := s.Repo.ByID(ctx, in.ParentID)
		if err != nil {
			if perr.IsCode(err, perr.ErrorCodeNotFound) {
				return domain.Created{}, perr.NotFoundf("parent reason %s not found", in.ParentID)
			}
			return domain.Created{}, perr.FromPostgres(err, "loading parent")
		}
		if parent.DeletedAt != nil {
			return domain.Created{}, perr.NotFoundf("parent reason %s not found", in.ParentID)
		}
		if parent.TopicID != topic.ID {
			return domain.Created{}, perr.InvalidArgf("parent reason belongs to another topic")
		}
		parentID = &in.ParentID
	} else {
		// one root reason per actor per topic, both identity halves count
		taken, err := s.Repo.HasActiveRoot(ctx, topic.ID, ident.Account, ident.Anon)
		if err != nil {
			return domain.Created{}, perr.FromPostgres(err, "checking for an existing reason")
		}
		if taken {
			return domain.Created{}, perr.Conflictf("you already posted a reason for this topic")
		}
	}

	row := repo.RowReason{
		ID:       uuid.NewString(),
		TopicID:  topic.ID,
		Side:     in.Side,
		Body:     in.Body,
		AnonKey:  ident.Anon,
		ParentID: parentID,
	}
	if ident.HasAccount() {
		acct := ident.Account
		row.AccountID = &acct
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		// the partial uniques catch same-half races the pre-check misses
		if perr.IsDuplicateKey(err) {
			return domain.Created{}, perr.Conflictf("you already posted a reason for this topic")
		}
		return domain.Created{}, perr.FromPostgres(err, "inserting reason")
	}
	return domain.Created{ID: row.ID, TopicID: topic.ID}, nil
}

// List returns the two-sided board for the resolved topic
func (s *Svc) List(ctx context.Context, ident identdom.Identity, slug string) (domain.Board, error) {
	topic, err := s.topics.Resolve(ctx, slug)
	if err != nil {
		return domain.Board{}, err
	}

	rows, err := s.Repo.ListByTopic(ctx, topic.ID)
	if err != nil {
		return domain.Board{}, perr.FromPostgres(err, "listing reasons")
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	scores, err := s.scores.ScoresFor(ctx, ids)
	if err != nil {
		return domain.Board{}, err
	}
	var mine map[string]int
	if ident.Actor() != "" {
		if mine, err = s.scores.VotesOf(ctx, ident, ids); err != nil {
			return domain.Board{}, err
		}
	}

	pro, con := assemble(rows, scores, mine)
	return domain.Board{TopicID: topic.ID, Pro: pro, Con: con}, nil
}

// SetDeleted implements domain.ModerationPort
func (s *Svc) SetDeleted(ctx context.Context, reasonID string, deleted bool) error {
	n, err := s.Repo.SetDeleted(ctx, reasonID, deleted)
	if err != nil {
		return perr.FromPostgres(err, "moderating reason")
	}
	if n == 0 {
		return perr.NotFoundf("reason %s not found", reasonID)
	}
	return nil
}

// SetFeatured implements domain.ModerationPort
func (s *Svc) SetFeatured(ctx context.Context, reasonID string, featured bool) error {
	n, err := s.Repo.SetFeatured(ctx, reasonID, featured)
	if err != nil {
		return perr.FromPostgres(err, "moderating reason")
	}
	if n == 0 {
		return perr.NotFoundf("reason %s not found", reasonID)
	}
	return nil
}

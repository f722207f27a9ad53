package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

type commentFixture struct {
	svc      *CommentService
	comments *stubCommentRepo
	alice    domain.Identity
	bob      domain.Identity
}

func newCommentFixture() *commentFixture {
	users := newStubUserRepo()
	posts := newStubPostRepo()
	f := &commentFixture{comments: newStubCommentRepo()}
	f.alice = users.add("u-alice", "alice", false)
	f.bob = users.add("u-bob", "bob", false)
	posts.add("p1", f.alice.UserID, "cat")
	posts.add("p2", f.alice.UserID, "cat")
	f.svc = NewCommentService(f.comments, posts, users, discardLogger)
	return f
}

func TestCommentService_Create(t *testing.T) {
	f := newCommentFixture()

	c, err := f.svc.Create(context.Background(), f.bob, ports.CreateCommentInput{PostID: "p1", Content: "nice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Author.ID != f.bob.UserID || c.Author.Username != "bob" || c.PostID != "p1" {
		t.Fatalf("unexpected comment: %+v", c)
	}
	if f.comments.byID[c.ID].AuthorID != f.bob.UserID {
		t.Fatalf("persisted author must be the caller")
	}
}

func TestCommentService_Create_Validation(t *testing.T) {
	f := newCommentFixture()

	_, err := f.svc.Create(context.Background(), f.bob, ports.CreateCommentInput{PostID: "nope", Content: "x"})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Field != "post_id" {
		t.Fatalf("expected post_id ValidationError, got %v", err)
	}

	if _, err := f.svc.Create(context.Background(), f.bob, ports.CreateCommentInput{PostID: "p1", Content: "  "}); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for blank content, got %v", err)
	}

	if _, err := f.svc.Create(context.Background(), domain.Identity{}, ports.CreateCommentInput{PostID: "p1", Content: "x"}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if len(f.comments.byID) != 0 {
		t.Fatalf("no comment must be persisted")
	}
}

func TestCommentService_List_Filter(t *testing.T) {
	f := newCommentFixture()
	f.comments.add("c1", "p1", f.bob.UserID)
	f.comments.add("c2", "p2", f.bob.UserID)
	f.comments.add("c3", "p1", f.alice.UserID)

	all, err := f.svc.List(context.Background(), ports.CommentFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(all))
	}

	filtered, err := f.svc.List(context.Background(), ports.CommentFilter{PostID: "p1"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(filtered) != 2 || filtered[0].ID != "c1" || filtered[1].ID != "c3" {
		t.Fatalf("unexpected filtered list: %+v", filtered)
	}

	none, err := f.svc.List(context.Background(), ports.CommentFilter{PostID: "unknown"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestCommentService_UpdateDelete_Ownership(t *testing.T) {
	f := newCommentFixture()
	f.comments.add("c1", "p1", f.bob.UserID)
	before := *f.comments.byID["c1"]

	if _, err := f.svc.Update(context.Background(), f.alice, "c1", ports.UpdateCommentInput{Content: strPtr("edited")}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := f.svc.Delete(context.Background(), f.alice, "c1"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if *f.comments.byID["c1"] != before {
		t.Fatalf("comment modified by non-author")
	}

	updated, err := f.svc.Update(context.Background(), f.bob, "c1", ports.UpdateCommentInput{Content: strPtr("edited")})
	if err != nil {
		t.Fatalf("author update failed: %v", err)
	}
	if updated.Content != "edited" || updated.PostID != "p1" {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if err := f.svc.Delete(context.Background(), f.bob, "c1"); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if _, err := f.svc.Get(context.Background(), "c1"); err != domain.ErrCommentNotFound {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

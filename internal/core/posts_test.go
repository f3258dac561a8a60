package core_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"blogr/internal/core"
	"blogr/internal/core/fake"
	"blogr/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Posts", func() {
	var (
		fakeRepo     *fake.Repository
		fakeSessions *fake.SessionVerifier
		fakeFiles    *fake.FileStore
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		posts *core.Posts

		authorId string
		identity core.Identity
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeSessions = new(fake.SessionVerifier)
		fakeFiles = new(fake.FileStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		posts = core.NewPosts(fakeLogger, fakeRepo, fakeSessions, fakeFiles)

		authorId = uuid.New().String()
		identity = core.Identity{ID: authorId, Username: "alice@example.com"}
		fakeErr = errors.New("fake error")
	})

	Describe("Create", func() {
		var (
			msg    core.PostMessage
			cover  core.CoverUpload
			record core.PostRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.PostMessage{Title: "T", Summary: "S", Content: "C"}
			cover = core.CoverUpload{
				File:     strings.NewReader("image-bytes"),
				Filename: "cover.jpg",
			}
		})

		JustBeforeEach(func() {
			record, err = posts.Create(ctx, "valid.token", msg, cover)
		})

		When("the session is valid", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(identity, nil)
				fakeFiles.SaveReturns("uploads/abc.jpg", nil)
				fakeRepo.CreatePostReturns(nil)
			})

			It("persists the post with the caller as author", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeSessions.VerifySessionCallCount()).To(Equal(1))
				Expect(fakeSessions.VerifySessionArgsForCall(0)).To(Equal("valid.token"))

				Expect(fakeFiles.SaveCallCount()).To(Equal(1))
				_, filename := fakeFiles.SaveArgsForCall(0)
				Expect(filename).To(Equal("cover.jpg"))

				Expect(fakeRepo.CreatePostCallCount()).To(Equal(1))
				_, stored := fakeRepo.CreatePostArgsForCall(0)
				Expect(stored.AuthorID).To(Equal(authorId))
				Expect(stored.Title).To(Equal("T"))
				Expect(stored.Cover).To(Equal("uploads/abc.jpg"))
				Expect(stored.CreatedAt).NotTo(BeZero())

				Expect(record.Author.ID).To(Equal(authorId))
				Expect(record.Author.Username).To(Equal("alice@example.com"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(core.Identity{}, core.ErrInvalidToken)
			})

			It("fails without touching the store", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(fakeFiles.SaveCallCount()).To(Equal(0))
				Expect(fakeRepo.CreatePostCallCount()).To(Equal(0))
			})
		})

		When("saving the cover fails", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(identity, nil)
				fakeFiles.SaveReturns("", fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreatePostCallCount()).To(Equal(0))
			})
		})
	})

	Describe("List", func() {
		var (
			records []core.PostRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = posts.List(ctx)
		})

		When("posts exist", func() {
			BeforeEach(func() {
				fakeRepo.ListRecentPostsReturns([]repository.Post{
					{ID: "p2", AuthorID: authorId, CreatedAt: time.Now()},
					{ID: "p1", AuthorID: authorId, CreatedAt: time.Now().Add(-time.Hour)},
				}, nil)
				fakeRepo.GetUsersByIDReturns([]repository.User{
					{ID: authorId, Username: "alice@example.com"},
				}, nil)
			})

			It("asks for the 20 most recent posts", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.ListRecentPostsCallCount()).To(Equal(1))
				_, limit := fakeRepo.ListRecentPostsArgsForCall(0)
				Expect(limit).To(Equal(20))
			})

			It("resolves each author's username once", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].Author.Username).To(Equal("alice@example.com"))
				Expect(records[1].Author.Username).To(Equal("alice@example.com"))

				Expect(fakeRepo.GetUsersByIDCallCount()).To(Equal(1))
				_, ids := fakeRepo.GetUsersByIDArgsForCall(0)
				Expect(ids).To(Equal([]string{authorId}))
			})
		})

		When("there are no posts", func() {
			BeforeEach(func() {
				fakeRepo.ListRecentPostsReturns([]repository.Post{}, nil)
			})

			It("returns an empty list without author lookup", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
				Expect(fakeRepo.GetUsersByIDCallCount()).To(Equal(0))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeRepo.ListRecentPostsReturns(nil, fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Get", func() {
		var (
			record core.PostRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = posts.Get(ctx, "p1")
		})

		When("the post exists", func() {
			BeforeEach(func() {
				fakeRepo.GetPostByIDReturns(repository.Post{
					ID:       "p1",
					Title:    "T",
					Summary:  "S",
					Content:  "C",
					AuthorID: authorId,
				}, nil)
				fakeRepo.GetUsersByIDReturns([]repository.User{
					{ID: authorId, Username: "alice@example.com"},
				}, nil)
			})

			It("returns the post with the author username resolved", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Title).To(Equal("T"))
				Expect(record.Summary).To(Equal("S"))
				Expect(record.Content).To(Equal("C"))
				Expect(record.Author.Username).To(Equal("alice@example.com"))
			})
		})

		When("the post does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetPostByIDReturns(repository.Post{}, repository.ErrPostNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(core.ErrPostNotFound))
			})
		})
	})

	Describe("Update", func() {
		var (
			msg    core.PostMessage
			cover  *core.CoverUpload
			record core.PostRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.PostMessage{Title: "new title", Summary: "new summary", Content: "new content"}
			cover = nil
		})

		JustBeforeEach(func() {
			record, err = posts.Update(ctx, "valid.token", "p1", msg, cover)
		})

		When("the caller is the author", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(identity, nil)
				fakeRepo.GetPostByIDReturns(repository.Post{
					ID:       "p1",
					Title:    "old title",
					Cover:    "uploads/old.jpg",
					AuthorID: authorId,
				}, nil)
				fakeRepo.UpdatePostReturns(nil)
			})

			It("applies the field updates and keeps the cover", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdatePostCallCount()).To(Equal(1))
				_, updated := fakeRepo.UpdatePostArgsForCall(0)
				Expect(updated.Title).To(Equal("new title"))
				Expect(updated.Summary).To(Equal("new summary"))
				Expect(updated.Content).To(Equal("new content"))
				Expect(updated.Cover).To(Equal("uploads/old.jpg"))
				Expect(updated.AuthorID).To(Equal(authorId))

				Expect(record.Title).To(Equal("new title"))
				Expect(fakeFiles.SaveCallCount()).To(Equal(0))
			})

			When("a new cover file is supplied", func() {
				BeforeEach(func() {
					cover = &core.CoverUpload{
						File:     strings.NewReader("new-image"),
						Filename: "new.png",
					}
					fakeFiles.SaveReturns("uploads/new.png", nil)
				})

				It("replaces the cover", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(fakeFiles.SaveCallCount()).To(Equal(1))
					_, updated := fakeRepo.UpdatePostArgsForCall(0)
					Expect(updated.Cover).To(Equal("uploads/new.png"))
				})
			})
		})

		When("the caller is not the author", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(core.Identity{ID: uuid.New().String()}, nil)
				fakeRepo.GetPostByIDReturns(repository.Post{
					ID:       "p1",
					AuthorID: authorId,
				}, nil)
			})

			It("fails with a not author error", func() {
				Expect(err).To(MatchError(core.ErrNotAuthor))
				Expect(fakeRepo.UpdatePostCallCount()).To(Equal(0))
			})
		})

		When("the post does not exist", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(identity, nil)
				fakeRepo.GetPostByIDReturns(repository.Post{}, repository.ErrPostNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(core.ErrPostNotFound))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(core.Identity{}, core.ErrInvalidToken)
			})

			It("fails without loading the post", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(fakeRepo.GetPostByIDCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Delete", func() {
		var err error

		JustBeforeEach(func() {
			err = posts.Delete(ctx, "valid.token", "p1")
		})

		When("the caller is the author", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(identity, nil)
				fakeRepo.GetPostByIDReturns(repository.Post{
					ID:       "p1",
					AuthorID: authorId,
				}, nil)
				fakeRepo.DeletePostReturns(nil)
			})

			It("deletes the post", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeletePostCallCount()).To(Equal(1))
				_, id := fakeRepo.DeletePostArgsForCall(0)
				Expect(id).To(Equal("p1"))
			})
		})

		When("the caller is not the author", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(core.Identity{ID: uuid.New().String()}, nil)
				fakeRepo.GetPostByIDReturns(repository.Post{
					ID:       "p1",
					AuthorID: authorId,
				}, nil)
			})

			It("fails with a not author error", func() {
				Expect(err).To(MatchError(core.ErrNotAuthor))
				Expect(fakeRepo.DeletePostCallCount()).To(Equal(0))
			})
		})

		When("the post does not exist", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(identity, nil)
				fakeRepo.GetPostByIDReturns(repository.Post{}, repository.ErrPostNotFound)
			})

			It("returns a not found error", func() {
				Expect(err).To(MatchError(core.ErrPostNotFound))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeSessions.VerifySessionReturns(core.Identity{}, core.ErrInvalidToken)
			})

			It("fails with an invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(fakeRepo.DeletePostCallCount()).To(Equal(0))
			})
		})
	})
})

package core_test

import (
	"context"
	"errors"
	"plugshare/internal/core"
	"plugshare/internal/core/fake"
	"plugshare/internal/repository"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("PlugShare", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context
		fixedNow   time.Time

		plugShare *core.PlugShare

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		fixedNow = time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("EET", 2*60*60))
		core.TimeNow = func() time.Time { return fixedNow }
		DeferCleanup(func() { core.TimeNow = time.Now })

		plugShare = core.NewPlugShare(fakeLogger, fakeRepo, bcrypt.MinCost)

		fakeErr = errors.New("fake error")
	})

	Describe("SignUp", func() {
		var (
			msg    core.SignUpMessage
			userID string
			err    error
		)

		BeforeEach(func() {
			msg = core.SignUpMessage{
				Username: "  alice  ",
				Password: "secret",
				Contact:  " alice@example.com ",
			}
			fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
		})

		JustBeforeEach(func() {
			userID, err = plugShare.SignUp(ctx, msg)
		})

		When("username is free", func() {
			It("should store a trimmed user with a bcrypt hash", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(userID)).To(Succeed())

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, argUsername := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal("alice"))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, argUser := fakeRepo.CreateUserArgsForCall(0)
				Expect(argUser.ID).To(Equal(userID))
				Expect(argUser.Username).To(Equal("alice"))
				Expect(argUser.Contact).To(Equal("alice@example.com"))
				Expect(argUser.PasswordHash).NotTo(Equal(msg.Password))
				Expect(bcrypt.CompareHashAndPassword([]byte(argUser.PasswordHash), []byte("secret"))).To(Succeed())
			})
		})

		When("username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{Username: "alice"}, nil)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
				Expect(userID).To(BeEmpty())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("insert hits the unique index", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUsernameTaken)
			})

			It("should return username taken error", func() {
				Expect(err).To(MatchError(core.ErrUsernameTaken))
			})
		})

		When("username is blank", func() {
			BeforeEach(func() {
				msg.Username = "   "
			})

			It("should return empty username error", func() {
				Expect(err).To(MatchError(core.ErrEmptyUsername))
				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(0))
			})
		})

		When("lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SignIn", func() {
		var (
			msg  core.AuthMessage
			hash []byte
			err  error
		)

		BeforeEach(func() {
			var genErr error
			hash, genErr = bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(genErr).NotTo(HaveOccurred())

			msg = core.AuthMessage{Username: " testuser ", Password: "testpass"}
			fakeRepo.GetUserByUsernameReturns(repository.User{
				ID:           uuid.NewString(),
				Username:     "testuser",
				PasswordHash: string(hash),
			}, nil)
		})

		JustBeforeEach(func() {
			err = plugShare.SignIn(ctx, msg)
		})

		When("password matches", func() {
			It("should succeed", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argUsername := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(argUsername).To(Equal("testuser"))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				msg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AddPlug", func() {
		var (
			msg    core.PlugMessage
			plugID string
			err    error
		)

		BeforeEach(func() {
			msg = core.PlugMessage{
				OwnerID:     uuid.NewString(),
				Description: " Tesla Supercharger ",
				Location:    " Main St ",
			}
		})

		JustBeforeEach(func() {
			plugID, err = plugShare.AddPlug(ctx, msg)
		})

		When("owner exists", func() {
			It("should store an active plug stamped in UTC", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(uuid.Validate(plugID)).To(Succeed())

				Expect(fakeRepo.CreatePlugCallCount()).To(Equal(1))
				_, argPlug := fakeRepo.CreatePlugArgsForCall(0)
				Expect(argPlug.ID).To(Equal(plugID))
				Expect(argPlug.OwnerID).To(Equal(msg.OwnerID))
				Expect(argPlug.Description).To(Equal("Tesla Supercharger"))
				Expect(argPlug.Location).To(Equal("Main St"))
				Expect(argPlug.Status).To(BeTrue())
				Expect(argPlug.CreatedAt.Location()).To(Equal(time.UTC))
				Expect(argPlug.CreatedAt.Equal(fixedNow)).To(BeTrue())
				Expect(argPlug.Reactions).To(BeEmpty())
			})
		})

		When("owner does not exist", func() {
			BeforeEach(func() {
				fakeRepo.CreatePlugReturns(repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(plugID).To(BeEmpty())
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeRepo.CreatePlugReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("EditPlug", func() {
		var (
			msg core.EditPlugMessage
			err error
		)

		BeforeEach(func() {
			msg = core.EditPlugMessage{
				PlugID:      uuid.NewString(),
				Description: " Level 2 charger ",
				Location:    " Elm St ",
			}
		})

		JustBeforeEach(func() {
			err = plugShare.EditPlug(ctx, msg)
		})

		When("plug exists", func() {
			It("should update trimmed fields", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.UpdatePlugCallCount()).To(Equal(1))
				_, argID, argDescription, argLocation := fakeRepo.UpdatePlugArgsForCall(0)
				Expect(argID).To(Equal(msg.PlugID))
				Expect(argDescription).To(Equal("Level 2 charger"))
				Expect(argLocation).To(Equal("Elm St"))
			})
		})

		When("plug does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdatePlugReturns(repository.ErrPlugNotFound)
			})

			It("should return plug not found error", func() {
				Expect(err).To(MatchError(core.ErrPlugNotFound))
			})
		})

		When("update fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdatePlugReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeletePlug", func() {
		var (
			plugID string
			userID string
			err    error
		)

		BeforeEach(func() {
			plugID = uuid.NewString()
			userID = uuid.NewString()
		})

		JustBeforeEach(func() {
			err = plugShare.DeletePlug(ctx, plugID, userID)
		})

		When("user owns the plug", func() {
			BeforeEach(func() {
				fakeRepo.DeletePlugReturns(true, nil)
			})

			It("should delete it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeletePlugCallCount()).To(Equal(1))
				_, argPlugID, argUserID := fakeRepo.DeletePlugArgsForCall(0)
				Expect(argPlugID).To(Equal(plugID))
				Expect(argUserID).To(Equal(userID))
			})
		})

		When("user does not own the plug", func() {
			BeforeEach(func() {
				fakeRepo.DeletePlugReturns(false, nil)
			})

			It("should succeed without error", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeletePlugReturns(false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("reactions", func() {
		var (
			plugID string
			userID string
		)

		BeforeEach(func() {
			plugID = uuid.NewString()
			userID = uuid.NewString()
		})

		It("LikePlug should set a like reaction", func() {
			Expect(plugShare.LikePlug(ctx, plugID, userID)).To(Succeed())

			Expect(fakeRepo.SetReactionCallCount()).To(Equal(1))
			_, argReaction := fakeRepo.SetReactionArgsForCall(0)
			Expect(argReaction.PlugID).To(Equal(plugID))
			Expect(argReaction.UserID).To(Equal(userID))
			Expect(argReaction.Kind).To(Equal(repository.ReactionLike))
			Expect(argReaction.ReactedAt.Equal(fixedNow)).To(BeTrue())
		})

		It("DislikePlug should set a dislike reaction", func() {
			Expect(plugShare.DislikePlug(ctx, plugID, userID)).To(Succeed())

			_, argReaction := fakeRepo.SetReactionArgsForCall(0)
			Expect(argReaction.Kind).To(Equal(repository.ReactionDislike))
		})

		When("plug does not exist", func() {
			BeforeEach(func() {
				fakeRepo.SetReactionReturns(repository.ErrPlugNotFound)
			})

			It("should return plug not found error", func() {
				Expect(plugShare.LikePlug(ctx, plugID, userID)).To(MatchError(core.ErrPlugNotFound))
				Expect(plugShare.DislikePlug(ctx, plugID, userID)).To(MatchError(core.ErrPlugNotFound))
			})
		})

		When("store fails", func() {
			BeforeEach(func() {
				fakeRepo.SetReactionReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(plugShare.LikePlug(ctx, plugID, userID)).To(MatchError(fakeErr))
			})
		})
	})

	Describe("MyPlugs", func() {
		var (
			ownerID string
			records []core.PlugRecord
			err     error
			base    time.Time
		)

		BeforeEach(func() {
			ownerID = uuid.NewString()
			base = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		})

		JustBeforeEach(func() {
			records, err = plugShare.MyPlugs(ctx, ownerID)
		})

		When("owner has plugs", func() {
			BeforeEach(func() {
				fakeRepo.GetPlugsByOwnerReturns([]repository.Plug{
					{
						ID:          "plug-2",
						Description: "Second",
						Location:    "Elm St",
						OwnerID:     ownerID,
						Status:      true,
						CreatedAt:   base.Add(time.Hour),
					},
					{
						ID:          "plug-1",
						Description: "Tesla Supercharger",
						Location:    "Main St",
						OwnerID:     ownerID,
						Status:      true,
						CreatedAt:   base,
						Reactions: []repository.Reaction{
							{PlugID: "plug-1", UserID: "carol", Kind: repository.ReactionLike, ReactedAt: base.Add(2 * time.Minute)},
							{PlugID: "plug-1", UserID: "bob", Kind: repository.ReactionDislike, ReactedAt: base.Add(3 * time.Minute)},
							{PlugID: "plug-1", UserID: "dave", Kind: repository.ReactionLike, ReactedAt: base.Add(time.Minute)},
						},
					},
				}, nil)
			})

			It("should return records ordered by creation time", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argOwner := fakeRepo.GetPlugsByOwnerArgsForCall(0)
				Expect(argOwner).To(Equal(ownerID))

				Expect(records).To(HaveLen(2))
				Expect(records[0]).To(Equal(core.PlugRecord{
					ID:       "plug-1",
					Plug:     "Tesla Supercharger",
					Location: "Main St",
					UserID:   ownerID,
					Status:   true,
					Date:     "2024-01-01T08:00:00Z",
					Likes: []core.ReactionRecord{
						{UserID: "dave", Date: "2024-01-01T08:01:00Z"},
						{UserID: "carol", Date: "2024-01-01T08:02:00Z"},
					},
					Dislikes: []core.ReactionRecord{
						{UserID: "bob", Date: "2024-01-01T08:03:00Z"},
					},
				}))
				Expect(records[1].ID).To(Equal("plug-2"))
				Expect(records[1].Likes).To(BeEmpty())
				Expect(records[1].Likes).NotTo(BeNil())
				Expect(records[1].Dislikes).NotTo(BeNil())
			})
		})

		When("owner has no plugs", func() {
			BeforeEach(func() {
				fakeRepo.GetPlugsByOwnerReturns(nil, nil)
			})

			It("should return an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).NotTo(BeNil())
				Expect(records).To(BeEmpty())
			})
		})

		When("query fails", func() {
			BeforeEach(func() {
				fakeRepo.GetPlugsByOwnerReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUsers", func() {
		var (
			records []core.UserRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = plugShare.GetUsers(ctx)
		})

		When("users exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUsersReturns([]repository.User{
					{
						ID:           "u1",
						Username:     "alice",
						PasswordHash: "$2a$04$hash",
						Contact:      "alice@example.com",
						Plugs:        []repository.Plug{{ID: "p1"}, {ID: "p2"}},
					},
					{ID: "u2", Username: "bob", PasswordHash: "$2a$04$hash"},
				}, nil)
			})

			It("should return public records without hashes", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(Equal([]core.UserRecord{
					{ID: "u1", Username: "alice", Contact: "alice@example.com", Plugs: []string{"p1", "p2"}},
					{ID: "u2", Username: "bob", Plugs: []string{}},
				}))
			})
		})

		When("query fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUsersReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})

package repository_test

import (
	"context"
	"plugshare/internal/db"
	"plugshare/internal/repository"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PlugShareRepository on SQLite", func() {
	var (
		repo  *repository.PlugShareRepository
		ctx   context.Context
		alice repository.User
		plug  repository.Plug
		now   time.Time
	)

	reactionsOf := func(plugID string) map[string]repository.ReactionKind {
		plugs, err := repo.GetPlugsByOwner(ctx, alice.ID)
		Expect(err).NotTo(HaveOccurred())

		kinds := map[string]repository.ReactionKind{}
		for _, p := range plugs {
			if p.ID != plugID {
				continue
			}
			for _, r := range p.Reactions {
				kinds[r.UserID] = r.Kind
			}
		}
		return kinds
	}

	react := func(userID string, kind repository.ReactionKind) error {
		return repo.SetReaction(ctx, repository.Reaction{
			PlugID:    plug.ID,
			UserID:    userID,
			Kind:      kind,
			ReactedAt: now,
		})
	}

	BeforeEach(func() {
		ctx = context.Background()
		now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		gdb, err := db.Open(db.DriverSQLite, ":memory:")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(gdb.Close)

		repo = repository.NewPlugShareRepository(gdb)
		Expect(repo.Migrate()).To(Succeed())

		alice = repository.User{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "hash",
			Contact:      "555-0001",
		}
		Expect(repo.CreateUser(ctx, alice)).To(Succeed())

		plug = repository.Plug{
			ID:          uuid.NewString(),
			Description: "Tesla Supercharger",
			Location:    "Main St",
			OwnerID:     alice.ID,
			Status:      true,
			CreatedAt:   now,
		}
		Expect(repo.CreatePlug(ctx, plug)).To(Succeed())
	})

	Describe("users", func() {
		It("should reject a second user with the same username", func() {
			err := repo.CreateUser(ctx, repository.User{
				ID:           uuid.NewString(),
				Username:     "alice",
				PasswordHash: "other",
			})
			Expect(err).To(MatchError(repository.ErrUsernameTaken))

			stored, err := repo.GetUserByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.ID).To(Equal(alice.ID))
			Expect(stored.PasswordHash).To(Equal("hash"))
		})

		It("should list users with their plug ids", func() {
			users, err := repo.GetUsers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Username).To(Equal("alice"))
			Expect(users[0].Plugs).To(HaveLen(1))
			Expect(users[0].Plugs[0].ID).To(Equal(plug.ID))
		})

		It("should report unknown usernames", func() {
			_, err := repo.GetUserByUsername(ctx, "mallory")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})
	})

	Describe("plugs", func() {
		It("should list the owner's plugs", func() {
			plugs, err := repo.GetPlugsByOwner(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(plugs).To(HaveLen(1))
			Expect(plugs[0].Location).To(Equal("Main St"))
			Expect(plugs[0].Status).To(BeTrue())
			Expect(plugs[0].CreatedAt.Equal(now)).To(BeTrue())
		})

		It("should refuse plugs of unknown owners", func() {
			err := repo.CreatePlug(ctx, repository.Plug{
				ID:        uuid.NewString(),
				OwnerID:   uuid.NewString(),
				CreatedAt: now,
			})
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})

		It("should edit description and location in place", func() {
			Expect(repo.UpdatePlug(ctx, plug.ID, "Fast charger", "Elm St")).To(Succeed())

			plugs, err := repo.GetPlugsByOwner(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(plugs[0].Description).To(Equal("Fast charger"))
			Expect(plugs[0].Location).To(Equal("Elm St"))
			Expect(plugs[0].OwnerID).To(Equal(alice.ID))
			Expect(plugs[0].CreatedAt.Equal(now)).To(BeTrue())
		})

		It("should report edits of unknown plugs", func() {
			Expect(repo.UpdatePlug(ctx, uuid.NewString(), "x", "y")).To(MatchError(repository.ErrPlugNotFound))
		})

		It("should ignore deletes by another user", func() {
			deleted, err := repo.DeletePlug(ctx, plug.ID, uuid.NewString())
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())

			plugs, err := repo.GetPlugsByOwner(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(plugs).To(HaveLen(1))
		})

		It("should delete the owner's plug with its reactions", func() {
			Expect(react("bob", repository.ReactionLike)).To(Succeed())

			deleted, err := repo.DeletePlug(ctx, plug.ID, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())

			plugs, err := repo.GetPlugsByOwner(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(plugs).To(BeEmpty())
		})
	})

	Describe("reactions", func() {
		It("should keep a single like when liking twice", func() {
			Expect(react("bob", repository.ReactionLike)).To(Succeed())
			now = now.Add(time.Minute)
			Expect(react("bob", repository.ReactionLike)).To(Succeed())

			plugs, err := repo.GetPlugsByOwner(ctx, alice.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(plugs[0].Reactions).To(HaveLen(1))
			Expect(plugs[0].Reactions[0].Kind).To(Equal(repository.ReactionLike))
			Expect(plugs[0].Reactions[0].ReactedAt.Equal(now)).To(BeTrue())
		})

		It("should replace a like with a dislike", func() {
			Expect(react("bob", repository.ReactionLike)).To(Succeed())
			Expect(react("bob", repository.ReactionDislike)).To(Succeed())

			Expect(reactionsOf(plug.ID)).To(Equal(map[string]repository.ReactionKind{
				"bob": repository.ReactionDislike,
			}))
		})

		It("should track each user separately", func() {
			Expect(react("bob", repository.ReactionLike)).To(Succeed())
			Expect(react("carol", repository.ReactionLike)).To(Succeed())
			Expect(react("bob", repository.ReactionDislike)).To(Succeed())

			Expect(reactionsOf(plug.ID)).To(Equal(map[string]repository.ReactionKind{
				"bob":   repository.ReactionDislike,
				"carol": repository.ReactionLike,
			}))
		})

		It("should report reactions on unknown plugs", func() {
			err := repo.SetReaction(ctx, repository.Reaction{
				PlugID:    uuid.NewString(),
				UserID:    "bob",
				Kind:      repository.ReactionLike,
				ReactedAt: now,
			})
			Expect(err).To(MatchError(repository.ErrPlugNotFound))
		})
	})
})

package repository_test

import (
	"context"
	"errors"
	"time"

	"solottery/internal/db"
	"solottery/internal/repository"
	"solottery/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RoundRepository", func() {
	var (
		repo        *repository.RoundRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeStorage = new(fake.Storage)
		ctx = context.Background()
		repo = repository.NewRoundRepository(fakeStorage)
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			It("persists an open round with a fresh id", func() {
				round, err := repo.Create(ctx, repository.Round{
					RoundID:          "R-1",
					EntryFeeLamports: 1000000,
					TreasuryAddress:  "TREASURY1",
					Network:          "devnet",
					// caller-supplied state must not survive
					IsActive: false,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(round.ID).NotTo(BeEmpty())
				Expect(round.IsActive).To(BeTrue())
				Expect(round.WinnerAddress).To(BeNil())
				Expect(round.DrawnAt).To(BeNil())

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				inserted, ok := record.(*repository.Round)
				Expect(ok).To(BeTrue())
				Expect(inserted.RoundID).To(Equal("R-1"))
				Expect(inserted.IsActive).To(BeTrue())
			})
		})

		When("the round id is already taken", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicateKey)
			})

			It("returns ErrRoundExists", func() {
				_, err := repo.Create(ctx, repository.Round{RoundID: "R-1"})

				Expect(err).To(MatchError(repository.ErrRoundExists))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("wraps the storage error", func() {
				_, err := repo.Create(ctx, repository.Round{RoundID: "R-1"})

				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetByRoundID", func() {
		When("the round exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					round := entity.(*repository.Round)
					round.RoundID = value.(string)
					round.IsActive = true
					return nil
				}
			})

			It("returns it", func() {
				round, err := repo.GetByRoundID(ctx, "R-1")

				Expect(err).NotTo(HaveOccurred())
				Expect(round.RoundID).To(Equal("R-1"))

				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("round_id"))
				Expect(value).To(Equal("R-1"))
			})
		})

		When("the round is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns ErrRoundNotFound", func() {
				_, err := repo.GetByRoundID(ctx, "R-404")

				Expect(err).To(MatchError(repository.ErrRoundNotFound))
			})
		})
	})

	Describe("Close", func() {
		var drawnAt time.Time

		BeforeEach(func() {
			drawnAt = time.Now().UTC()
		})

		When("the round is still open", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, value any, entity any) error {
					round := entity.(*repository.Round)
					round.RoundID = value.(string)
					round.IsActive = false
					winner := "W1"
					round.WinnerAddress = &winner
					return nil
				}
			})

			It("closes it with the winner", func() {
				round, err := repo.Close(ctx, "R-1", "W1", drawnAt)

				Expect(err).NotTo(HaveOccurred())
				Expect(round.IsActive).To(BeFalse())
				Expect(*round.WinnerAddress).To(Equal("W1"))

				_, _, conds, updates := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(conds).To(HaveKeyWithValue("round_id", "R-1"))
				Expect(conds).To(HaveKeyWithValue("is_active", true))
				Expect(updates).To(HaveKeyWithValue("winner_address", "W1"))
				Expect(updates).To(HaveKeyWithValue("is_active", false))
			})
		})

		When("a concurrent draw already closed the round", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("returns ErrRoundClosed without re-fetching", func() {
				_, err := repo.Close(ctx, "R-1", "W1", drawnAt)

				Expect(err).To(MatchError(repository.ErrRoundClosed))
				Expect(fakeStorage.GetOneByCallCount()).To(Equal(0))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, fakeErr)
			})

			It("wraps the storage error", func() {
				_, err := repo.Close(ctx, "R-1", "W1", drawnAt)

				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("List", func() {
		It("orders rounds newest first", func() {
			_, err := repo.List(ctx)

			Expect(err).NotTo(HaveOccurred())
			_, conds, order, _ := fakeStorage.GetAllWhereArgsForCall(0)
			Expect(conds).To(BeNil())
			Expect(order).To(Equal("created_at desc"))
		})
	})
})

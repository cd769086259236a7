package repository_test

import (
	"context"
	"errors"

	"solottery/internal/db"
	"solottery/internal/repository"
	"solottery/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EntryRepository", func() {
	var (
		repo        *repository.EntryRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeStorage = new(fake.Storage)
		ctx = context.Background()
		repo = repository.NewEntryRepository(fakeStorage)
	})

	Describe("Create", func() {
		When("the insert succeeds", func() {
			It("persists the entry with a fresh id", func() {
				entry, err := repo.Create(ctx, repository.Entry{
					RoundID:       "R-1",
					WalletAddress: "W1",
					TxSignature:   "SIG1",
					Verified:      true,
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(entry.ID).NotTo(BeEmpty())
				Expect(entry.Verified).To(BeTrue())

				_, record := fakeStorage.InsertArgsForCall(0)
				inserted := record.(*repository.Entry)
				Expect(inserted.TxSignature).To(Equal("SIG1"))
			})
		})

		When("the signature was already submitted", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicateKey)
			})

			It("returns ErrEntryExists", func() {
				_, err := repo.Create(ctx, repository.Entry{TxSignature: "SIG1"})

				Expect(err).To(MatchError(repository.ErrEntryExists))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("wraps the storage error", func() {
				_, err := repo.Create(ctx, repository.Entry{TxSignature: "SIG1"})

				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetBySignature", func() {
		When("the signature exists in any round", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, value any, entity any) error {
					entry := entity.(*repository.Entry)
					entry.TxSignature = value.(string)
					entry.RoundID = "R-2"
					return nil
				}
			})

			It("returns it", func() {
				entry, err := repo.GetBySignature(ctx, "SIG1")

				Expect(err).NotTo(HaveOccurred())
				Expect(entry.RoundID).To(Equal("R-2"))

				_, column, _, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("tx_signature"))
			})
		})

		When("the signature is unknown", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns ErrEntryNotFound", func() {
				_, err := repo.GetBySignature(ctx, "SIG404")

				Expect(err).To(MatchError(repository.ErrEntryNotFound))
			})
		})
	})

	Describe("GetByRoundSignature", func() {
		It("scopes the lookup to the round", func() {
			_, err := repo.GetByRoundSignature(ctx, "R-1", "SIG1")

			Expect(err).NotTo(HaveOccurred())
			_, conds, _ := fakeStorage.GetOneWhereArgsForCall(0)
			Expect(conds).To(HaveKeyWithValue("round_id", "R-1"))
			Expect(conds).To(HaveKeyWithValue("tx_signature", "SIG1"))
		})

		When("no match exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("returns ErrEntryNotFound", func() {
				_, err := repo.GetByRoundSignature(ctx, "R-1", "SIG404")

				Expect(err).To(MatchError(repository.ErrEntryNotFound))
			})
		})
	})

	Describe("ListVerified", func() {
		It("filters on the verified flag", func() {
			_, err := repo.ListVerified(ctx, "R-1")

			Expect(err).NotTo(HaveOccurred())
			_, conds, order, _ := fakeStorage.GetAllWhereArgsForCall(0)
			Expect(conds).To(HaveKeyWithValue("round_id", "R-1"))
			Expect(conds).To(HaveKeyWithValue("verified", true))
			Expect(order).To(Equal("created_at asc"))
		})
	})

	Describe("SetVerified", func() {
		When("the entry exists", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, value any, entity any) error {
					entry := entity.(*repository.Entry)
					entry.ID = value.(string)
					entry.Verified = true
					return nil
				}
			})

			It("overwrites the verdict and returns the entry", func() {
				entry, err := repo.SetVerified(ctx, "entry-1", true)

				Expect(err).NotTo(HaveOccurred())
				Expect(entry.Verified).To(BeTrue())

				_, _, conds, updates := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(conds).To(HaveKeyWithValue("id", "entry-1"))
				Expect(updates).To(HaveKeyWithValue("verified", true))
			})
		})

		When("the entry vanished after the update", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns ErrEntryNotFound", func() {
				_, err := repo.SetVerified(ctx, "entry-404", false)

				Expect(err).To(MatchError(repository.ErrEntryNotFound))
			})
		})
	})
})

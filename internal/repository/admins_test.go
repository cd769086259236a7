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

var _ = Describe("AdminRepository", func() {
	var (
		repo        *repository.AdminRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeStorage = new(fake.Storage)
		ctx = context.Background()
		repo = repository.NewAdminRepository(fakeStorage)
	})

	Describe("MigrateAndSeed", func() {
		It("migrates all models and seeds the default admin", func() {
			Expect(repo.MigrateAndSeed(ctx)).To(Succeed())

			Expect(fakeStorage.MigrateModelsCallCount()).To(Equal(1))
			Expect(fakeStorage.MigrateModelsArgsForCall(0)).To(HaveLen(3))

			Expect(fakeStorage.SeedCallCount()).To(Equal(1))
			_, records := fakeStorage.SeedArgsForCall(0)
			admins := records.(*[]repository.Admin)
			Expect(*admins).To(HaveLen(1))
			Expect((*admins)[0].Username).To(Equal("admin"))
		})

		When("the migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateModelsReturns(fakeErr)
			})

			It("does not seed", func() {
				Expect(repo.MigrateAndSeed(ctx)).To(MatchError(fakeErr))
				Expect(fakeStorage.SeedCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetByUsername", func() {
		When("the admin exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, _ string, value any, entity any) error {
					admin := entity.(*repository.Admin)
					admin.Username = value.(string)
					return nil
				}
			})

			It("returns the admin", func() {
				admin, err := repo.GetByUsername(ctx, "admin")

				Expect(err).NotTo(HaveOccurred())
				Expect(admin.Username).To(Equal("admin"))
			})
		})

		When("the admin is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns ErrAdminNotFound", func() {
				_, err := repo.GetByUsername(ctx, "ghost")

				Expect(err).To(MatchError(repository.ErrAdminNotFound))
			})
		})
	})
})

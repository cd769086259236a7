package core_test

import (
	"context"
	"errors"
	"time"

	"solottery/internal/core"
	"solottery/internal/core/fake"
	"solottery/internal/repository"
	tokenIssuer "solottery/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Lottery", func() {
	var (
		fakeRounds   *fake.RoundStore
		fakeEntries  *fake.EntryStore
		fakeAdmins   *fake.AdminStore
		fakeVerifier *fake.SignatureVerifier
		fakeJWT      *fake.JWTIssuer
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context

		lottery *core.Lottery

		fakeErr error
	)

	BeforeEach(func() {
		fakeRounds = new(fake.RoundStore)
		fakeEntries = new(fake.EntryStore)
		fakeAdmins = new(fake.AdminStore)
		fakeVerifier = new(fake.SignatureVerifier)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		lottery = core.NewLottery(fakeLogger, fakeRounds, fakeEntries, fakeAdmins, fakeVerifier, fakeJWT)

		fakeErr = errors.New("fake error")
	})

	openRound := func() repository.Round {
		return repository.Round{
			ID:               "round-uuid",
			RoundID:          "R-1",
			IsActive:         true,
			EntryFeeLamports: 1000000,
			TreasuryAddress:  "TREASURY1",
			Network:          "devnet",
			CreatedAt:        time.Now().UTC(),
			UpdatedAt:        time.Now().UTC(),
		}
	}

	Describe("CreateRound", func() {
		var (
			msg    core.CreateRoundMessage
			record core.RoundRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.CreateRoundMessage{
				RoundID:          "R-1",
				EntryFeeLamports: 1000000,
				TreasuryAddress:  "TREASURY1",
				Network:          "devnet",
			}
		})

		JustBeforeEach(func() {
			record, err = lottery.CreateRound(ctx, msg)
		})

		When("the round id is unused", func() {
			BeforeEach(func() {
				fakeRounds.CreateReturns(openRound(), nil)
			})

			It("creates an open round", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.RoundID).To(Equal("R-1"))
				Expect(record.IsActive).To(BeTrue())
				Expect(record.WinnerAddress).To(BeNil())
				Expect(record.DrawnAt).To(BeNil())

				Expect(fakeRounds.CreateCallCount()).To(Equal(1))
				_, round := fakeRounds.CreateArgsForCall(0)
				Expect(round.RoundID).To(Equal("R-1"))
				Expect(round.EntryFeeLamports).To(Equal(int64(1000000)))
				Expect(round.TreasuryAddress).To(Equal("TREASURY1"))
				Expect(round.Network).To(Equal("devnet"))
			})
		})

		When("the round id already exists", func() {
			BeforeEach(func() {
				fakeRounds.CreateReturns(repository.Round{}, repository.ErrRoundExists)
			})

			It("returns a conflict error", func() {
				Expect(err).To(MatchError(core.ErrRoundExists))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRounds.CreateReturns(repository.Round{}, fakeErr)
			})

			It("wraps the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SubmitEntry", func() {
		var (
			msg    core.EnterMessage
			record core.EntryRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.EnterMessage{
				WalletAddress: "W1",
				TxSignature:   "SIG1",
			}
			fakeRounds.GetByRoundIDReturns(openRound(), nil)
			fakeEntries.GetBySignatureReturns(repository.Entry{}, repository.ErrEntryNotFound)
		})

		JustBeforeEach(func() {
			record, err = lottery.SubmitEntry(ctx, "R-1", msg)
		})

		When("the round does not exist", func() {
			BeforeEach(func() {
				fakeRounds.GetByRoundIDReturns(repository.Round{}, repository.ErrRoundNotFound)
			})

			It("returns not found without touching the chain", func() {
				Expect(err).To(MatchError(core.ErrRoundNotFound))
				Expect(fakeVerifier.VerifySignatureCallCount()).To(Equal(0))
				Expect(fakeEntries.CreateCallCount()).To(Equal(0))
			})
		})

		When("the round is closed", func() {
			BeforeEach(func() {
				closed := openRound()
				closed.IsActive = false
				fakeRounds.GetByRoundIDReturns(closed, nil)
			})

			It("rejects the entry regardless of signature validity", func() {
				Expect(err).To(MatchError(core.ErrRoundClosed))
				Expect(fakeVerifier.VerifySignatureCallCount()).To(Equal(0))
				Expect(fakeEntries.CreateCallCount()).To(Equal(0))
			})
		})

		When("the signature was already submitted to any round", func() {
			BeforeEach(func() {
				fakeEntries.GetBySignatureReturns(repository.Entry{
					RoundID:     "R-other",
					TxSignature: "SIG1",
				}, nil)
			})

			It("returns a conflict without querying the chain", func() {
				Expect(err).To(MatchError(core.ErrDuplicateEntry))
				Expect(fakeVerifier.VerifySignatureCallCount()).To(Equal(0))
				Expect(fakeEntries.CreateCallCount()).To(Equal(0))
			})
		})

		When("a concurrent submission wins the insert race", func() {
			BeforeEach(func() {
				fakeVerifier.VerifySignatureReturns(true)
				fakeEntries.CreateReturns(repository.Entry{}, repository.ErrEntryExists)
			})

			It("returns a conflict", func() {
				Expect(err).To(MatchError(core.ErrDuplicateEntry))
			})
		})

		When("the signature cannot be verified on chain", func() {
			BeforeEach(func() {
				fakeVerifier.VerifySignatureReturns(false)
				fakeEntries.CreateReturns(repository.Entry{
					ID:            "entry-uuid",
					RoundID:       "R-1",
					WalletAddress: "W1",
					TxSignature:   "SIG1",
					Verified:      false,
				}, nil)
			})

			It("stores the entry unverified instead of rejecting it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Verified).To(BeFalse())

				Expect(fakeEntries.CreateCallCount()).To(Equal(1))
				_, entry := fakeEntries.CreateArgsForCall(0)
				Expect(entry.Verified).To(BeFalse())
			})
		})

		When("the signature verifies", func() {
			BeforeEach(func() {
				fakeVerifier.VerifySignatureReturns(true)
				fakeEntries.CreateReturns(repository.Entry{
					ID:            "entry-uuid",
					RoundID:       "R-1",
					WalletAddress: "W1",
					TxSignature:   "SIG1",
					Verified:      true,
				}, nil)
			})

			It("stores a verified entry", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Verified).To(BeTrue())

				Expect(fakeVerifier.VerifySignatureCallCount()).To(Equal(1))
				_, network, signature, wallet, treasury := fakeVerifier.VerifySignatureArgsForCall(0)
				Expect(network).To(Equal("devnet"))
				Expect(signature).To(Equal("SIG1"))
				Expect(wallet).To(Equal("W1"))
				Expect(treasury).To(Equal("TREASURY1"))
			})
		})
	})

	Describe("ReverifyEntry", func() {
		var (
			record core.EntryRecord
			err    error
		)

		BeforeEach(func() {
			fakeRounds.GetByRoundIDReturns(openRound(), nil)
			fakeEntries.GetByRoundSignatureReturns(repository.Entry{
				ID:            "entry-uuid",
				RoundID:       "R-1",
				WalletAddress: "W1",
				TxSignature:   "SIG1",
				Verified:      false,
			}, nil)
		})

		JustBeforeEach(func() {
			record, err = lottery.ReverifyEntry(ctx, "R-1", "SIG1")
		})

		When("the round does not exist", func() {
			BeforeEach(func() {
				fakeRounds.GetByRoundIDReturns(repository.Round{}, repository.ErrRoundNotFound)
			})

			It("returns not found", func() {
				Expect(err).To(MatchError(core.ErrRoundNotFound))
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeEntries.GetByRoundSignatureReturns(repository.Entry{}, repository.ErrEntryNotFound)
			})

			It("returns not found", func() {
				Expect(err).To(MatchError(core.ErrEntryNotFound))
			})
		})

		When("the chain now confirms the transaction", func() {
			BeforeEach(func() {
				fakeVerifier.VerifySignatureReturns(true)
				fakeEntries.SetVerifiedReturns(repository.Entry{
					ID:       "entry-uuid",
					RoundID:  "R-1",
					Verified: true,
				}, nil)
			})

			It("overwrites the verdict with submission-time parameters", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Verified).To(BeTrue())

				_, network, signature, wallet, treasury := fakeVerifier.VerifySignatureArgsForCall(0)
				Expect(network).To(Equal("devnet"))
				Expect(signature).To(Equal("SIG1"))
				Expect(wallet).To(Equal("W1"))
				Expect(treasury).To(Equal("TREASURY1"))

				_, entryID, verified := fakeEntries.SetVerifiedArgsForCall(0)
				Expect(entryID).To(Equal("entry-uuid"))
				Expect(verified).To(BeTrue())
			})
		})

		When("called repeatedly with no underlying chain change", func() {
			BeforeEach(func() {
				fakeVerifier.VerifySignatureReturns(false)
				fakeEntries.SetVerifiedReturns(repository.Entry{
					ID:       "entry-uuid",
					RoundID:  "R-1",
					Verified: false,
				}, nil)
			})

			It("is idempotent", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Verified).To(BeFalse())

				again, err := lottery.ReverifyEntry(ctx, "R-1", "SIG1")
				Expect(err).NotTo(HaveOccurred())
				Expect(again.Verified).To(Equal(record.Verified))
				Expect(fakeEntries.SetVerifiedCallCount()).To(Equal(2))
			})
		})
	})

	Describe("Draw", func() {
		var (
			result core.DrawResult
			err    error
		)

		BeforeEach(func() {
			fakeRounds.GetByRoundIDReturns(openRound(), nil)
		})

		JustBeforeEach(func() {
			result, err = lottery.Draw(ctx, "R-1")
		})

		When("the round does not exist", func() {
			BeforeEach(func() {
				fakeRounds.GetByRoundIDReturns(repository.Round{}, repository.ErrRoundNotFound)
			})

			It("returns not found", func() {
				Expect(err).To(MatchError(core.ErrRoundNotFound))
			})
		})

		When("the round is already closed", func() {
			BeforeEach(func() {
				closed := openRound()
				closed.IsActive = false
				fakeRounds.GetByRoundIDReturns(closed, nil)
			})

			It("rejects the draw", func() {
				Expect(err).To(MatchError(core.ErrRoundClosed))
				Expect(fakeRounds.CloseCallCount()).To(Equal(0))
			})
		})

		When("no entry is verified", func() {
			BeforeEach(func() {
				fakeEntries.ListVerifiedReturns([]repository.Entry{}, nil)
			})

			It("fails without closing the round", func() {
				Expect(err).To(MatchError(core.ErrNoEligibleEntries))
				Expect(fakeRounds.CloseCallCount()).To(Equal(0))
			})
		})

		When("verified entries exist", func() {
			BeforeEach(func() {
				fakeEntries.ListVerifiedReturns([]repository.Entry{
					{ID: "e1", WalletAddress: "W1", TxSignature: "SIG1", Verified: true},
					{ID: "e2", WalletAddress: "W2", TxSignature: "SIG2", Verified: true},
				}, nil)

				fakeRounds.CloseStub = func(ctx context.Context, roundID, winnerAddress string, drawnAt time.Time) (repository.Round, error) {
					closed := openRound()
					closed.IsActive = false
					closed.WinnerAddress = &winnerAddress
					closed.DrawnAt = &drawnAt
					return closed, nil
				}
			})

			It("closes the round on the drawn winner", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Winner.WalletAddress).To(BeElementOf("W1", "W2"))
				Expect(result.Round.IsActive).To(BeFalse())
				Expect(result.Round.WinnerAddress).NotTo(BeNil())
				Expect(*result.Round.WinnerAddress).To(Equal(result.Winner.WalletAddress))
				Expect(result.Round.DrawnAt).NotTo(BeNil())

				Expect(fakeRounds.CloseCallCount()).To(Equal(1))
				_, roundID, winner, _ := fakeRounds.CloseArgsForCall(0)
				Expect(roundID).To(Equal("R-1"))
				Expect(winner).To(Equal(result.Winner.WalletAddress))
			})

			It("reports the winning entry's signature", func() {
				Expect(err).NotTo(HaveOccurred())
				switch result.Winner.WalletAddress {
				case "W1":
					Expect(result.Winner.TxSignature).To(Equal("SIG1"))
				case "W2":
					Expect(result.Winner.TxSignature).To(Equal("SIG2"))
				}
			})
		})

		When("a concurrent draw already closed the round", func() {
			BeforeEach(func() {
				fakeEntries.ListVerifiedReturns([]repository.Entry{
					{ID: "e1", WalletAddress: "W1", TxSignature: "SIG1", Verified: true},
				}, nil)
				fakeRounds.CloseReturns(repository.Round{}, repository.ErrRoundClosed)
			})

			It("loses cleanly", func() {
				Expect(err).To(MatchError(core.ErrRoundClosed))
			})
		})
	})

	Describe("Draw distribution", func() {
		It("selects uniformly among verified entries", func() {
			fakeRounds.GetByRoundIDReturns(openRound(), nil)
			fakeEntries.ListVerifiedReturns([]repository.Entry{
				{ID: "e1", WalletAddress: "W1", TxSignature: "SIG1", Verified: true},
				{ID: "e2", WalletAddress: "W2", TxSignature: "SIG2", Verified: true},
			}, nil)
			fakeRounds.CloseStub = func(ctx context.Context, roundID, winnerAddress string, drawnAt time.Time) (repository.Round, error) {
				closed := openRound()
				closed.IsActive = false
				closed.WinnerAddress = &winnerAddress
				closed.DrawnAt = &drawnAt
				return closed, nil
			}

			wins := map[string]int{}
			for i := 0; i < 1000; i++ {
				result, err := lottery.Draw(ctx, "R-1")
				Expect(err).NotTo(HaveOccurred())
				wins[result.Winner.WalletAddress]++
			}

			// two-sided bound far beyond ~3 standard deviations for p=0.5, n=1000
			Expect(wins["W1"]).To(BeNumerically(">", 400))
			Expect(wins["W1"]).To(BeNumerically("<", 600))
			Expect(wins["W1"] + wins["W2"]).To(Equal(1000))
		})
	})

	Describe("Authenticate", func() {
		var (
			loginMsg core.LoginMessage
			token    string
			err      error
			genToken *jwt.Token
		)

		BeforeEach(func() {
			genToken = jwt.New(jwt.SigningMethodHS512)

			loginMsg = core.LoginMessage{
				Username: "admin",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = lottery.Authenticate(ctx, loginMsg)
		})

		When("credentials are valid", func() {
			BeforeEach(func() {
				fakeAdmins.GetByUsernameReturns(repository.Admin{
					ID:           "admin-uuid",
					Username:     "admin",
					PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky", // bcrypt hash of "testpass"
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("returns a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					Username:   "admin",
					Subject:    "admin-uuid",
					Expiration: 24,
				}))
			})
		})

		When("the admin does not exist", func() {
			BeforeEach(func() {
				fakeAdmins.GetByUsernameReturns(repository.Admin{}, repository.ErrAdminNotFound)
			})

			It("returns admin not found", func() {
				Expect(err).To(MatchError(core.ErrAdminNotFound))
			})
		})

		When("the password does not match", func() {
			BeforeEach(func() {
				fakeAdmins.GetByUsernameReturns(repository.Admin{
					Username:     "admin",
					PasswordHash: "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky",
				}, nil)
				loginMsg.Password = "wrong"
			})

			It("returns incorrect password", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})
	})

	Describe("AuthorizeAdmin", func() {
		When("the token validates", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "admin-uuid"}, nil)
			})

			It("authorizes", func() {
				Expect(lottery.AuthorizeAdmin("some.token")).To(Succeed())
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("rejects", func() {
				Expect(lottery.AuthorizeAdmin("bad.token")).To(MatchError(core.ErrInvalidToken))
			})
		})
	})
})

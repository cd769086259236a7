package solana_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"solottery/internal/solana"
	"solottery/internal/solana/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func jsonResponse(code int, body string) *http.Response {
	return &http.Response{
		StatusCode: code,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var _ = Describe("Verifier", func() {
	var (
		verifier   *solana.Verifier
		fakeClient *fake.HTTPClient
		ctx        context.Context

		verified bool
	)

	const confirmedTx = `{
		"jsonrpc": "2.0",
		"id": 1,
		"result": {
			"meta": {"err": null},
			"transaction": {"message": {"accountKeys": ["W1", "TREASURY1", "11111111111111111111111111111111"]}}
		}
	}`

	BeforeEach(func() {
		fakeClient = new(fake.HTTPClient)
		ctx = context.Background()
		verifier = solana.NewVerifier(zap.NewNop().Sugar(), fakeClient)
	})

	JustBeforeEach(func() {
		verified = verifier.VerifySignature(ctx, "devnet", "SIG1", "W1", "TREASURY1")
	})

	When("the transaction is confirmed and references both accounts", func() {
		BeforeEach(func() {
			fakeClient.DoReturns(jsonResponse(http.StatusOK, confirmedTx), nil)
		})

		It("verifies", func() {
			Expect(verified).To(BeTrue())
		})

		It("issues a single getTransaction call against the devnet endpoint", func() {
			Expect(fakeClient.DoCallCount()).To(Equal(1))
			req := fakeClient.DoArgsForCall(0)
			Expect(req.Method).To(Equal(http.MethodPost))
			Expect(req.URL.String()).To(Equal("https://api.devnet.solana.com"))
			Expect(req.Header.Get("Content-Type")).To(Equal("application/json"))

			var rpcCall struct {
				Jsonrpc string `json:"jsonrpc"`
				Method  string `json:"method"`
				Params  []any  `json:"params"`
			}
			Expect(json.NewDecoder(req.Body).Decode(&rpcCall)).To(Succeed())
			Expect(rpcCall.Jsonrpc).To(Equal("2.0"))
			Expect(rpcCall.Method).To(Equal("getTransaction"))
			Expect(rpcCall.Params[0]).To(Equal("SIG1"))
			Expect(rpcCall.Params[1]).To(Equal(map[string]any{"encoding": "json"}))
		})
	})

	When("the transaction is not found", func() {
		BeforeEach(func() {
			fakeClient.DoReturns(jsonResponse(http.StatusOK, `{"jsonrpc":"2.0","id":1,"result":null}`), nil)
		})

		It("fails closed", func() {
			Expect(verified).To(BeFalse())
		})
	})

	When("the transaction failed on chain", func() {
		BeforeEach(func() {
			fakeClient.DoReturns(jsonResponse(http.StatusOK, `{
				"result": {
					"meta": {"err": {"InstructionError": [0, "Custom"]}},
					"transaction": {"message": {"accountKeys": ["W1", "TREASURY1"]}}
				}
			}`), nil)
		})

		It("fails closed", func() {
			Expect(verified).To(BeFalse())
		})
	})

	When("the wallet is not among the referenced accounts", func() {
		BeforeEach(func() {
			fakeClient.DoReturns(jsonResponse(http.StatusOK, `{
				"result": {
					"meta": {"err": null},
					"transaction": {"message": {"accountKeys": ["SOMEONE_ELSE", "TREASURY1"]}}
				}
			}`), nil)
		})

		It("fails closed", func() {
			Expect(verified).To(BeFalse())
		})
	})

	When("the treasury is not among the referenced accounts", func() {
		BeforeEach(func() {
			fakeClient.DoReturns(jsonResponse(http.StatusOK, `{
				"result": {
					"meta": {"err": null},
					"transaction": {"message": {"accountKeys": ["W1", "OTHER_TREASURY"]}}
				}
			}`), nil)
		})

		It("fails closed", func() {
			Expect(verified).To(BeFalse())
		})
	})

	When("the transport fails", func() {
		BeforeEach(func() {
			fakeClient.DoReturns(nil, errors.New("connection refused"))
		})

		It("fails closed instead of erroring", func() {
			Expect(verified).To(BeFalse())
		})
	})

	When("the endpoint returns a non-ok status", func() {
		BeforeEach(func() {
			fakeClient.DoReturns(jsonResponse(http.StatusTooManyRequests, `rate limited`), nil)
		})

		It("fails closed", func() {
			Expect(verified).To(BeFalse())
		})
	})

	When("the response body is malformed", func() {
		BeforeEach(func() {
			fakeClient.DoReturns(jsonResponse(http.StatusOK, `{not json`), nil)
		})

		It("fails closed", func() {
			Expect(verified).To(BeFalse())
		})
	})

	Describe("network resolution", func() {
		BeforeEach(func() {
			// fresh body per call, the response reader is single-use
			fakeClient.DoStub = func(req *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, confirmedTx), nil
			}
		})

		It("resolves each cluster to its own endpoint", func() {
			verifier.VerifySignature(ctx, "mainnet-beta", "SIG1", "", "")
			req := fakeClient.DoArgsForCall(fakeClient.DoCallCount() - 1)
			Expect(req.URL.String()).To(Equal("https://api.mainnet-beta.solana.com"))
		})

		It("falls back to devnet for unrecognized networks", func() {
			verifier.VerifySignature(ctx, "localnet", "SIG1", "", "")
			req := fakeClient.DoArgsForCall(fakeClient.DoCallCount() - 1)
			Expect(req.URL.String()).To(Equal("https://api.devnet.solana.com"))
		})

		It("skips account checks when no expected addresses are supplied", func() {
			Expect(verifier.VerifySignature(ctx, "devnet", "SIG1", "", "")).To(BeTrue())
		})
	})
})

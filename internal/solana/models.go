package solana

type rpcRequest struct {
	Jsonrpc string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result *transactionResult `json:"result"`
}

type transactionResult struct {
	Meta        *transactionMeta `json:"meta"`
	Transaction transactionBody  `json:"transaction"`
}

// Err is the raw on-chain execution error; any non-null value means the
// transaction failed.
type transactionMeta struct {
	Err any `json:"err"`
}

type transactionBody struct {
	Message transactionMessage `json:"message"`
}

type transactionMessage struct {
	AccountKeys []string `json:"accountKeys"`
}

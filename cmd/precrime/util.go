package precrime

import (
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"

	"github.com/StreamDefi/precrime/types"
)

// loadEnv reads .env into the process environment. A missing file is not an error,
// the variables may already be exported.
func loadEnv() error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

func loadPrivateKey() (*ecdsa.PrivateKey, error) {
	if err := loadEnv(); err != nil {
		return nil, err
	}

	pk := os.Getenv("PRIVATE_KEY")
	if pk == "" {
		return nil, errors.New("PRIVATE_KEY not found in environment or .env file")
	}

	return crypto.HexToECDSA(pk)
}

func rpcURL(eid types.EID) (string, error) {
	if err := loadEnv(); err != nil {
		return "", err
	}

	key := fmt.Sprintf("RPC_URL_%d", eid)
	url := os.Getenv(key)
	if url == "" {
		return "", errors.New(key + " not found in environment or .env file")
	}

	return url, nil
}

func dialRPC(eid types.EID) (*ethclient.Client, error) {
	url, err := rpcURL(eid)
	if err != nil {
		return nil, err
	}

	client, err := ethclient.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain %v: %w", eid, err)
	}

	return client, nil
}

func loadPackets(path string) ([]types.InboundPacket, error) {
	if path == "" {
		return nil, errors.New("--packets is required")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read packets: %w", err)
	}

	var packets []types.InboundPacket
	if err := json.Unmarshal(raw, &packets); err != nil {
		return nil, fmt.Errorf("failed to parse packets %s: %w", path, err)
	}

	return packets, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

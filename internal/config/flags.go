package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the command-line flags in args into a partial
// [StructuredConfig]. Positional arguments remaining after the flags are
// stored in [StructuredConfig.Command].
//
// Flags:
//
//	-vault          vault identifier
//	-cipher         aes-256-gcm | xchacha20-poly1305
//	-min-passphrase minimum passphrase length accepted on seal
//	-kdf-time       Argon2id passes
//	-kdf-memory     Argon2id memory in KiB
//	-kdf-threads    Argon2id parallelism
//	-driver         memory | file | sqlite | postgres
//	-d              database DSN
//	-dir            directory of the file store
//	-quota          storage quota in bytes
//	-ai-address     AI proxy base URL
//	-request-timeout AI proxy request timeout (e.g. "30s")
//	-log-dir        log file directory
//	-c/-config      json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		vaultID        string
		cipherName     string
		minPassphrase  int
		kdfTime        uint
		kdfMemory      uint
		kdfThreads     uint
		driver         string
		dsn            string
		dir            string
		quota          int64
		aiAddress      string
		requestTimeout time.Duration
		logDir         string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("familyvault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&vaultID, "vault", "", "Vault identifier")
	fs.StringVar(&cipherName, "cipher", "", "Authenticated cipher for new seals")
	fs.IntVar(&minPassphrase, "min-passphrase", 0, "Minimum passphrase length")
	fs.UintVar(&kdfTime, "kdf-time", 0, "Argon2id passes")
	fs.UintVar(&kdfMemory, "kdf-memory", 0, "Argon2id memory in KiB")
	fs.UintVar(&kdfThreads, "kdf-threads", 0, "Argon2id parallelism")
	fs.StringVar(&driver, "driver", "", "Storage driver")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&dir, "dir", "", "File store directory")
	fs.Int64Var(&quota, "quota", 0, "Storage quota in bytes")
	fs.StringVar(&aiAddress, "ai-address", "", "AI proxy base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "AI proxy request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logDir, "log-dir", "", "Log file directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if kdfThreads > 255 {
		return nil, fmt.Errorf("error parsing flags: kdf-threads must be at most 255")
	}

	return &StructuredConfig{
		Vault: Vault{
			ID:                  vaultID,
			Cipher:              cipherName,
			MinPassphraseLength: minPassphrase,
		},
		KDF: KDF{
			Time:      uint32(kdfTime),
			MemoryKiB: uint32(kdfMemory),
			Threads:   uint8(kdfThreads),
		},
		Storage: Storage{
			Driver:     driver,
			DSN:        dsn,
			Dir:        dir,
			QuotaBytes: quota,
		},
		Adapter: Adapter{
			AIAddress:      aiAddress,
			RequestTimeout: requestTimeout,
		},
		Log:          Log{Dir: logDir},
		JSONFilePath: jsonConfigPath,
		Command:      fs.Args(),
	}, nil
}

// FILE: example/dump/main.go
package main

import (
	"fmt"

	"github.com/lixenwraith/tinylog"
	"github.com/lixenwraith/tinylog/sanitizer"
)

// TestPayload defines a struct for testing complex type dumps.
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Logger Dump and Sanitization Test ---")

	byteRecord := []byte("binary\ndata\twith\x00null")

	structRecord := TestPayload{
		RequestID: 9223372036854775807,
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
	}

	for _, policy := range []sanitizer.PolicyPreset{sanitizer.PolicyRaw, sanitizer.PolicyTxt, sanitizer.PolicyJSON} {
		fmt.Printf("\n[policy=%s]\n", policy)

		logger, err := tinylog.NewBuilder().
			Sanitization(policy).
			BufferSize(192).
			ShowTimestamp(false).
			Build()
		if err != nil {
			fmt.Printf("Failed to initialize logger: %v\n", err)
			return
		}

		logger.Infof("Byte Record -> %s", byteRecord)
		logger.Dump(tinylog.LevelInfo, "struct", structRecord)
		logger.Dump(tinylog.LevelInfo, "pointer", &structRecord)

		_ = logger.Shutdown()
	}

	fmt.Println("\n--- Test Complete ---")
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"jerseyform/internal/config"
	"jerseyform/internal/domain"
	"jerseyform/internal/infrastructure/logger"
	"jerseyform/internal/pipeline"
)

func main() {
	var (
		draftPath = flag.String("draft", "", "path to a JSON file with the form values")
		method    = flag.String("method", "cash", "payment method: cash or online")
		provider  = flag.String("provider", "", "online payment provider (bKash or Nagad)")
		txnRef    = flag.String("txn", "", "transaction id for online payment")
	)
	flag.Parse()

	if *draftPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: orderclient -draft order.json [-method cash|online] [-provider bKash|Nagad] [-txn TXN123]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.NewConsole(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	values, err := readDraft(*draftPath)
	if err != nil {
		zapLogger.Fatal("reading draft", zap.Error(err))
	}

	p, err := pipeline.NewModule(cfg, pipeline.NewLogNotifier(zapLogger), zapLogger)
	if err != nil {
		zapLogger.Fatal("wiring order pipeline", zap.Error(err))
	}
	defer p.Close()

	ctx := context.Background()
	p.Start(ctx)

	base, err := p.Submit(values)
	if err != nil {
		zapLogger.Fatal("order form rejected", zap.Error(err))
	}

	var result *pipeline.Result
	switch *method {
	case "online":
		fmt.Printf("Base price: %d Tk. Online payment adds a processing fee.\n", base)
		if cfg.Payment.WalletNumber != "" {
			fmt.Printf("Send the payment to wallet %s and pass the transaction id with -txn.\n", cfg.Payment.WalletNumber)
		}
		result, err = p.ConfirmOnline(ctx, domain.PaymentProvider(*provider), *txnRef)
	case "cash":
		fmt.Printf("Base price: %d Tk, payable on delivery.\n", base)
		result, err = p.ConfirmCash(ctx)
	default:
		zapLogger.Fatal("unknown payment method", zap.String("method", *method))
	}
	if err != nil {
		zapLogger.Fatal("order submission failed", zap.Error(err))
	}

	fmt.Printf("Order placed. Order ID: %s\n", result.OrderID)
	if result.Fallback {
		fmt.Println("Note: the server did not return an id; the one above is a local reference.")
	}
}

func readDraft(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return values, nil
}

// aion-agent is a command-line client for the AION platform: wallet
// management, token claims, bug bounties, and challenges.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/AION721963/aion-wallet-sdk/config"
	"github.com/AION721963/aion-wallet-sdk/internal/log"
	"github.com/AION721963/aion-wallet-sdk/pkg/aion"
	"github.com/AION721963/aion-wallet-sdk/pkg/moltbook"
	"github.com/AION721963/aion-wallet-sdk/pkg/wallet"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("load config: %v", err)
	}

	// Scan for --username, --api-url, and --log-level before the subcommand.
	// Flags override environment values loaded above.
	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--username" && len(args) > 1:
			cfg.Username = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--username="):
			cfg.Username = args[0][len("--username="):]
			args = args[1:]
		case args[0] == "--api-url" && len(args) > 1:
			cfg.APIBaseURL = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--api-url="):
			cfg.APIBaseURL = args[0][len("--api-url="):]
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			cfg.LogLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			cfg.LogLevel = args[0][len("--log-level="):]
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	if err := log.Init(cfg.LogLevel, cfg.LogJSON, cfg.LogFile); err != nil {
		fatal("init logging: %v", err)
	}
	log.CLI.Debug().Str("api_url", cfg.APIBaseURL).Msg("configuration resolved")

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]

	switch cmd {
	case "wallet":
		cmdWallet(cmdArgs)
	case "claim":
		cmdClaim(cmdArgs, cfg)
	case "bounties":
		cmdBounties(cfg)
	case "bounty":
		cmdBounty(cmdArgs, cfg)
	case "challenges":
		cmdChallenges(cmdArgs, cfg)
	case "challenge":
		cmdChallenge(cmdArgs, cfg)
	case "stats":
		cmdStats(cfg)
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: aion-agent [global flags] <command> [flags]

Global flags:
  --username <name>   Agent username (default: $AION_USERNAME)
  --api-url <url>     Platform API endpoint (default: %s)
  --log-level <lvl>   debug, info, warn, or error (default: info)

Commands:
  wallet generate [--words 12|24] [--qr <file>]
                                  Generate a wallet from a fresh mnemonic
  wallet import [--mnemonic "word1 word2 ..."]
                                  Derive a wallet (prompts if no flag given)
  wallet address --secret <base58>
                                  Show the address for a secret key
  wallet validate <address>       Check address form (exit 1 when invalid)
  wallet qr <address> [--out <file>]
                                  Write an address QR code PNG

  claim start                     Request a claim verification code
  claim message                   Print the verification message to post
  claim complete --post-url <url> [--address <addr>]
                                  Finish a claim with the posted URL
  claim auto [--title <t>] [--submolt <s>] [--address <addr>]
                                  Start, post to Moltbook, and complete

  bounties                        List bug bounty categories
  bounty submit --category <c> --title <t> --description <d>
                 [--steps <s>] [--expected <e>] [--actual <a>]
                                  Submit a bug report

  challenges [--status open|solved|all]
                                  List challenges
  challenge submit --slug <s> --url <u> --description <d>
                                  Submit a challenge solution

  stats                           Show agent stats
`, aion.DefaultBaseURL)
}

// ── wallet ───────────────────────────────────────────────────────────────

func cmdWallet(args []string) {
	if len(args) < 1 {
		fatal("Usage: aion-agent wallet <generate|import|address|validate|qr> [flags]")
	}

	switch args[0] {
	case "generate":
		cmdWalletGenerate(args[1:])
	case "import":
		cmdWalletImport(args[1:])
	case "address":
		cmdWalletAddress(args[1:])
	case "validate":
		cmdWalletValidate(args[1:])
	case "qr":
		cmdWalletQR(args[1:])
	default:
		fatal("Unknown wallet command: %s\nUsage: aion-agent wallet <generate|import|address|validate|qr> [flags]", args[0])
	}
}

func cmdWalletGenerate(args []string) {
	fs := flag.NewFlagSet("wallet generate", flag.ExitOnError)
	words := fs.Int("words", 24, "Mnemonic length (12 or 24 words)")
	qrFile := fs.String("qr", "", "Write an address QR code PNG to this path")
	fs.Parse(args)

	var bits int
	switch *words {
	case 24:
		bits = wallet.Entropy24Words
	case 12:
		bits = wallet.Entropy12Words
	default:
		fatal("--words must be 12 or 24")
	}

	w, err := wallet.GenerateWithEntropy(bits)
	if err != nil {
		fatal("generate wallet: %v", err)
	}

	fmt.Println("Mnemonic (write this down!):")
	fmt.Printf("  %s\n\n", w.Mnemonic)
	fmt.Printf("Address: %s\n", w.PublicKey)

	if *qrFile != "" {
		writeAddressQR(w.PublicKey, *qrFile)
	}
}

func cmdWalletImport(args []string) {
	fs := flag.NewFlagSet("wallet import", flag.ExitOnError)
	mnemonic := fs.String("mnemonic", "", "BIP-39 mnemonic (12 or 24 words)")
	fs.Parse(args)

	phrase := *mnemonic
	if phrase == "" {
		input, err := readSecret("Enter mnemonic: ")
		if err != nil {
			fatal("read mnemonic: %v", err)
		}
		phrase = strings.TrimSpace(string(input))
	}

	if !wallet.ValidateMnemonic(phrase) {
		fatal("invalid mnemonic")
	}

	w, err := wallet.ImportFromMnemonic(phrase)
	if err != nil {
		fatal("import wallet: %v", err)
	}

	fmt.Printf("Address: %s\n", w.PublicKey)
}

func cmdWalletAddress(args []string) {
	fs := flag.NewFlagSet("wallet address", flag.ExitOnError)
	secret := fs.String("secret", "", "Base58-encoded 64-byte secret key")
	fs.Parse(args)

	if *secret == "" {
		fatal("Usage: aion-agent wallet address --secret <base58>")
	}

	w, err := wallet.ImportFromSecretKeyString(*secret)
	if err != nil {
		fatal("decode secret key: %v", err)
	}

	fmt.Println(w.PublicKey)
}

func cmdWalletValidate(args []string) {
	if len(args) < 1 {
		fatal("Usage: aion-agent wallet validate <address>")
	}

	if !wallet.ValidateAddress(args[0]) {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
}

func cmdWalletQR(args []string) {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		fatal("Usage: aion-agent wallet qr <address> [--out <file>]")
	}
	address := args[0]

	fs := flag.NewFlagSet("wallet qr", flag.ExitOnError)
	out := fs.String("out", "", "Output PNG path (default: <address>.png)")
	fs.Parse(args[1:])

	path := *out
	if path == "" {
		path = address + ".png"
	}

	writeAddressQR(address, path)
}

func writeAddressQR(address, path string) {
	png, err := wallet.AddressQR(address, wallet.DefaultQRSize)
	if err != nil {
		fatal("render qr: %v", err)
	}

	if err := os.WriteFile(path, png, 0o644); err != nil {
		fatal("write %s: %v", path, err)
	}

	fmt.Printf("QR code written to %s\n", path)
}

// ── claim ────────────────────────────────────────────────────────────────

func cmdClaim(args []string, cfg *config.Config) {
	if len(args) < 1 {
		fatal("Usage: aion-agent claim <start|message|complete|auto> [flags]")
	}

	switch args[0] {
	case "start":
		cmdClaimStart(cfg)
	case "message":
		cmdClaimMessage(cfg)
	case "complete":
		cmdClaimComplete(args[1:], cfg)
	case "auto":
		cmdClaimAuto(args[1:], cfg)
	default:
		fatal("Unknown claim command: %s\nUsage: aion-agent claim <start|message|complete|auto> [flags]", args[0])
	}
}

func cmdClaimStart(cfg *config.Config) {
	client := newClient(cfg)

	resp, err := client.StartClaim()
	if err != nil {
		fatal("start claim: %v", err)
	}

	fmt.Printf("Claim code: %s\n", resp.ClaimCode)
	if resp.Message != "" {
		fmt.Printf("Message:    %s\n", resp.Message)
	}
}

func cmdClaimMessage(cfg *config.Config) {
	client := newClient(cfg)

	msg, err := client.GetVerificationMessage()
	if err != nil {
		fatal("verification message: %v", err)
	}

	fmt.Println(msg)
}

func cmdClaimComplete(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("claim complete", flag.ExitOnError)
	postURL := fs.String("post-url", "", "URL of the post carrying the verification message")
	address := fs.String("address", "", "Wallet address to receive tokens")
	fs.Parse(args)

	if *postURL == "" {
		fatal("Usage: aion-agent claim complete --post-url <url> [--address <addr>]")
	}

	client := newClient(cfg)
	result, err := completeClaim(client, *postURL, *address)
	if err != nil {
		fatal("complete claim: %v", err)
	}

	printClaimResult(result)
}

func cmdClaimAuto(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("claim auto", flag.ExitOnError)
	title := fs.String("title", "Claiming my $AION tokens", "Moltbook post title")
	submolt := fs.String("submolt", "", "Submolt to post in (default: "+moltbook.DefaultSubmolt+")")
	address := fs.String("address", "", "Wallet address to receive tokens")
	fs.Parse(args)

	if err := cfg.RequireMoltbookToken(); err != nil {
		fatal("%v", err)
	}

	client := newClient(cfg)

	msg, err := client.GetVerificationMessage()
	if err != nil {
		fatal("verification message: %v", err)
	}

	mb := moltbook.NewWithBaseURL(cfg.MoltbookToken, cfg.MoltbookBaseURL)
	post, err := mb.CreatePost(*title, msg, *submolt)
	if err != nil {
		fatal("create post: %v", err)
	}

	fmt.Printf("Posted: %s\n", post.URL)

	result, err := completeClaim(client, post.URL, *address)
	if err != nil {
		fatal("complete claim: %v", err)
	}

	printClaimResult(result)
}

func completeClaim(client *aion.Client, postURL, address string) (*aion.ClaimResult, error) {
	if address != "" {
		return client.CompleteClaimWithAddress(postURL, address)
	}
	return client.CompleteClaim(postURL)
}

func printClaimResult(result *aion.ClaimResult) {
	if !result.Success {
		if result.Error != "" {
			fatal("claim rejected: %s", result.Error)
		}
		fatal("claim rejected")
	}

	fmt.Println("Claim completed.")
	if result.TokenAmount > 0 {
		fmt.Printf("Tokens:  %.2f\n", result.TokenAmount)
	}
	if result.Message != "" {
		fmt.Printf("Message: %s\n", result.Message)
	}
}

// ── bounty ───────────────────────────────────────────────────────────────

func cmdBounties(cfg *config.Config) {
	client := newClient(cfg)

	categories, err := client.GetBugBounties()
	if err != nil {
		fatal("list bounties: %v", err)
	}

	if len(categories) == 0 {
		fmt.Println("No bounty categories found.")
		return
	}

	printJSON(categories)
}

func cmdBounty(args []string, cfg *config.Config) {
	if len(args) < 1 || args[0] != "submit" {
		fatal("Usage: aion-agent bounty submit --category <c> --title <t> --description <d> [flags]")
	}

	fs := flag.NewFlagSet("bounty submit", flag.ExitOnError)
	category := fs.String("category", "", "Bounty category slug")
	title := fs.String("title", "", "Report title")
	description := fs.String("description", "", "What is wrong")
	steps := fs.String("steps", "", "Steps to reproduce")
	expected := fs.String("expected", "", "Expected behavior")
	actual := fs.String("actual", "", "Actual behavior")
	fs.Parse(args[1:])

	if *category == "" || *title == "" || *description == "" {
		fatal("Usage: aion-agent bounty submit --category <c> --title <t> --description <d> [flags]")
	}

	client := newClient(cfg)

	result, err := client.SubmitBugReport(aion.BugReport{
		Category:         *category,
		Title:            *title,
		Description:      *description,
		StepsToReproduce: *steps,
		ExpectedBehavior: *expected,
		ActualBehavior:   *actual,
	})
	if err != nil {
		fatal("submit bug report: %v", err)
	}

	printSubmitResult(result)
}

// ── challenge ────────────────────────────────────────────────────────────

func cmdChallenges(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("challenges", flag.ExitOnError)
	status := fs.String("status", aion.StatusOpen, "Filter: open, solved, or all")
	fs.Parse(args)

	client := newClient(cfg)

	challenges, err := client.GetChallenges(*status)
	if err != nil {
		fatal("list challenges: %v", err)
	}

	if len(challenges) == 0 {
		fmt.Println("No challenges found.")
		return
	}

	printJSON(challenges)
}

func cmdChallenge(args []string, cfg *config.Config) {
	if len(args) < 1 || args[0] != "submit" {
		fatal("Usage: aion-agent challenge submit --slug <s> --url <u> --description <d>")
	}

	fs := flag.NewFlagSet("challenge submit", flag.ExitOnError)
	slug := fs.String("slug", "", "Challenge slug")
	solutionURL := fs.String("url", "", "URL of the posted solution")
	description := fs.String("description", "", "How the solution works")
	fs.Parse(args[1:])

	if *slug == "" || *solutionURL == "" || *description == "" {
		fatal("Usage: aion-agent challenge submit --slug <s> --url <u> --description <d>")
	}

	client := newClient(cfg)

	result, err := client.SubmitChallengeSolution(aion.ChallengeSolution{
		ChallengeSlug: *slug,
		SolutionURL:   *solutionURL,
		Description:   *description,
	})
	if err != nil {
		fatal("submit solution: %v", err)
	}

	printSubmitResult(result)
}

// ── stats ────────────────────────────────────────────────────────────────

func cmdStats(cfg *config.Config) {
	client := newClient(cfg)

	stats, err := client.GetMyStats()
	if err != nil {
		fatal("get stats: %v", err)
	}

	printJSON(stats)
}

// ── Client helper ────────────────────────────────────────────────────────

// newClient builds a platform client from the resolved configuration. A
// configured wallet address is validated and attached before any call.
func newClient(cfg *config.Config) *aion.Client {
	if err := cfg.RequireUsername(); err != nil {
		fatal("%v", err)
	}

	client := aion.NewWithBaseURL(cfg.Username, cfg.APIBaseURL)
	if cfg.WalletAddress != "" {
		if err := client.SetWalletAddress(cfg.WalletAddress); err != nil {
			fatal("wallet address: %v", err)
		}
	}
	return client
}

func printSubmitResult(result *aion.SubmitResult) {
	if !result.Success {
		if result.Error != "" {
			fatal("submission rejected: %s", result.Error)
		}
		fatal("submission rejected")
	}

	fmt.Println("Submitted.")
	if result.Message != "" {
		fmt.Printf("Message: %s\n", result.Message)
	}
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal("marshal result: %v", err)
	}
	fmt.Println(string(data))
}

// ── Secret prompt helper ─────────────────────────────────────────────────

func readSecret(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return nil, err
	}
	return secret, nil
}

// ── Error helper ─────────────────────────────────────────────────────────

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

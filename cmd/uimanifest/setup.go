package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const serverName = "uimanifest"

// clientKind selects how a client is registered.
type clientKind int

const (
	// kindCLI clients are registered through their own `mcp add` subcommand.
	kindCLI clientKind = iota
	// kindFile clients read a project-local mcp.json that we edit directly.
	kindFile
)

// AgentDef describes one MCP client. Every client is project-scoped: the
// registered command pins --root, so a global registration would tie all
// projects to a single UI package.
type AgentDef struct {
	ID          string
	DisplayName string
	Kind        clientKind
	Binary      string // kindCLI: binary on PATH
	Dir         string // kindFile: project directory that holds mcp.json
	ServersKey  string
	Transport   string // written as "type" when set
}

// ConfigPath is the JSON file checked for an existing registration.
func (d AgentDef) ConfigPath() string {
	if d.Kind == kindCLI {
		return ".mcp.json"
	}
	return filepath.Join(d.Dir, "mcp.json")
}

// DetectedAgent is a client found in the current project.
type DetectedAgent struct {
	Def            AgentDef
	AlreadySetup   bool
	ResolvedConfig string
}

type setupOptions struct {
	auto bool
	// serveArgs are appended after the binary name in the registered command.
	serveArgs []string
}

// Replaceable for testing.
var (
	lookPathFunc = exec.LookPath
	statFunc     = os.Stat
	runCLIFunc   = runAgentCLI
)

var agentRegistry = []AgentDef{
	{ID: "claude_code", DisplayName: "Claude Code", Kind: kindCLI, Binary: "claude", ServersKey: "mcpServers"},
	{ID: "openai_codex", DisplayName: "OpenAI Codex", Kind: kindCLI, Binary: "codex", ServersKey: "mcpServers"},
	{ID: "vscode_copilot", DisplayName: "VS Code Copilot", Kind: kindFile, Dir: ".vscode", ServersKey: "servers", Transport: "stdio"},
	{ID: "cursor", DisplayName: "Cursor", Kind: kindFile, Dir: ".cursor", ServersKey: "mcpServers"},
}

// serverEntry is the JSON object registered under the server name.
type serverEntry struct {
	Type    string   `json:"type,omitempty"`
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

func newServerEntry(def AgentDef, serveArgs []string) serverEntry {
	return serverEntry{Type: def.Transport, Command: serverName, Args: serveArgs}
}

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Register 'uimanifest serve' with MCP clients in this project",
		Long: `Detect MCP clients used in the current project (Claude Code, Codex, VS Code,
Cursor) and register 'uimanifest serve' with each. Existing entries are left
untouched. The registered command pins --root and --out so the server finds
the manifests regardless of the client's working directory.`,
		Args: cobra.NoArgs,
		RunE: runSetup,
	}
	cmd.Flags().Bool("auto", false, "configure every detected client without prompting")
	return cmd
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root: %w", err)
	}
	auto, _ := cmd.Flags().GetBool("auto")

	executeSetup(cmd.InOrStdin(), cmd.OutOrStdout(), setupOptions{
		auto:      auto,
		serveArgs: []string{"serve", "--root", root, "--out", cfg.Out},
	})
	return nil
}

// detectAgents finds CLI clients on PATH and editors whose project
// directory exists.
func detectAgents() []DetectedAgent {
	var detected []DetectedAgent
	for _, def := range agentRegistry {
		switch def.Kind {
		case kindCLI:
			if _, err := lookPathFunc(def.Binary); err != nil {
				continue
			}
		case kindFile:
			if _, err := statFunc(def.Dir); err != nil {
				continue
			}
		}
		path := def.ConfigPath()
		detected = append(detected, DetectedAgent{
			Def:            def,
			ResolvedConfig: path,
			AlreadySetup:   isRegistered(path, def.ServersKey),
		})
	}
	return detected
}

// parseServers returns the servers object of an MCP config document,
// creating both when absent.
func parseServers(data []byte, serversKey string) (map[string]any, map[string]any, error) {
	config := make(map[string]any)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}
	servers, ok := config[serversKey].(map[string]any)
	if !ok {
		servers = make(map[string]any)
	}
	return config, servers, nil
}

func isRegistered(path, serversKey string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	_, servers, err := parseServers(data, serversKey)
	if err != nil {
		return false
	}
	_, exists := servers[serverName]
	return exists
}

// mergeServerEntry adds entry under serversKey, keeping every other key of
// the existing document. Returns nil, nil when an entry already exists.
func mergeServerEntry(existing []byte, serversKey string, entry serverEntry) ([]byte, error) {
	config, servers, err := parseServers(existing, serversKey)
	if err != nil {
		return nil, err
	}
	if _, exists := servers[serverName]; exists {
		return nil, nil
	}

	servers[serverName] = entry
	config[serversKey] = servers

	out, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// runAgentCLI runs `<binary> mcp add --scope <scope> uimanifest -- uimanifest <serveArgs...>`.
func runAgentCLI(w io.Writer, def AgentDef, scope string, serveArgs []string) error {
	args := append([]string{"mcp", "add", "--scope", scope, serverName, "--", serverName}, serveArgs...)
	c := exec.Command(def.Binary, args...)
	c.Stdout = w
	c.Stderr = w
	return c.Run()
}

func configureFileAgent(def AgentDef, configPath string, serveArgs []string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	existing, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", configPath, err)
	}

	merged, err := mergeServerEntry(existing, def.ServersKey, newServerEntry(def, serveArgs))
	if err != nil || merged == nil {
		return err
	}
	return os.WriteFile(configPath, merged, 0644)
}

// promptYesNo reads Y/n; empty input and EOF mean yes.
func promptYesNo(r *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s ", question)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	}
	return false
}

// promptScope returns "project", "user", or "" to skip.
func promptScope(r *bufio.Reader, w io.Writer, agentName string) string {
	fmt.Fprintf(w, "\n%s scope: [1] project  [2] user  [3] skip > ", agentName)
	line, _ := r.ReadString('\n')
	switch strings.TrimSpace(line) {
	case "1", "":
		return "project"
	case "2":
		return "user"
	}
	return ""
}

// executeSetup is the testable core of the setup command.
func executeSetup(in io.Reader, w io.Writer, opts setupOptions) {
	detected := detectAgents()
	if len(detected) == 0 {
		fmt.Fprintln(w, "No supported MCP clients detected.")
		return
	}

	fmt.Fprintln(w, "Detected MCP clients:")
	for _, d := range detected {
		note := ""
		if d.AlreadySetup {
			note = " (already configured)"
		}
		fmt.Fprintf(w, "  * %s%s\n", d.Def.DisplayName, note)
	}

	// One reader for all prompts so buffered input is not lost between them.
	r := bufio.NewReader(in)
	if !opts.auto && !promptYesNo(r, w, "\nConfigure clients? [Y/n]") {
		return
	}

	for _, d := range detected {
		if d.AlreadySetup {
			fmt.Fprintf(w, "%s: already configured, skipping\n", d.Def.DisplayName)
			continue
		}
		configureOneAgent(r, w, d, opts)
	}
}

func configureOneAgent(r *bufio.Reader, w io.Writer, d DetectedAgent, opts setupOptions) {
	var (
		err  error
		done string
	)

	switch d.Def.Kind {
	case kindCLI:
		scope := "project"
		if !opts.auto {
			scope = promptScope(r, w, d.Def.DisplayName)
		}
		if scope == "" {
			fmt.Fprintln(w, "  skipped")
			return
		}
		err = runCLIFunc(w, d.Def, scope, opts.serveArgs)
		done = "scope: " + scope

	case kindFile:
		if !opts.auto && !promptYesNo(r, w, fmt.Sprintf("%s: add to %s? [Y/n]", d.Def.DisplayName, d.ResolvedConfig)) {
			fmt.Fprintln(w, "  skipped")
			return
		}
		err = configureFileAgent(d.Def, d.ResolvedConfig, opts.serveArgs)
		done = d.ResolvedConfig
	}

	if err != nil {
		red.Fprintf(w, "  ! %s: failed: %v\n", d.Def.DisplayName, err)
		return
	}
	green.Fprintf(w, "  + %s configured (%s)\n", d.Def.DisplayName, done)
}

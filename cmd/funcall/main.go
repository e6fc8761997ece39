// Package main runs the interactive function-calling agent: a terminal
// chat that mediates between the operator and a local or hosted model,
// with a fixed set of workspace-scoped functions the model may call.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/hollandm/funcall/internal/config"
	"github.com/hollandm/funcall/internal/orchestrator"
	orchadapter "github.com/hollandm/funcall/internal/orchestrator/adapter"
	orchmodels "github.com/hollandm/funcall/internal/orchestrator/models"
	"github.com/hollandm/funcall/internal/prompt"
	"github.com/hollandm/funcall/internal/provider"
	providermodels "github.com/hollandm/funcall/internal/provider/models"
	"github.com/hollandm/funcall/internal/tool/directory"
	"github.com/hollandm/funcall/internal/tool/file"
	"github.com/hollandm/funcall/internal/tool/gitutil"
	"github.com/hollandm/funcall/internal/tool/pathutil"
	"github.com/hollandm/funcall/internal/tool/shell"
	"github.com/hollandm/funcall/internal/ui"
	uiservices "github.com/hollandm/funcall/internal/ui/services"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config          *config.Config
	UI              *ui.UI
	ProviderFactory func(context.Context) (providermodels.Provider, error)
}

func createRealUI() *ui.UI {
	channels := ui.NewUIChannels()
	renderer := uiservices.NewGlamourRenderer()
	spinnerFactory := func() spinner.Model {
		return spinner.New(spinner.WithSpinner(spinner.Dot))
	}
	return ui.NewUI(channels, renderer, spinnerFactory)
}

func createRealProviderFactory(cfg *config.Config) func(context.Context) (providermodels.Provider, error) {
	return func(ctx context.Context) (providermodels.Provider, error) {
		return provider.New(ctx, cfg)
	}
}

// createTools builds the function registry backing the agent. Every tool
// operates through the same canonical workspace resolver; nothing reaches
// outside of it.
func createTools(cfg *config.Config, workspaceRoot string) ([]orchadapter.Tool, string, error) {
	canonicalRoot, err := pathutil.CanonicaliseRoot(workspaceRoot)
	if err != nil {
		return nil, "", fmt.Errorf("failed to canonicalize workspace root: %w", err)
	}

	resolver := pathutil.NewResolver(canonicalRoot)

	// Initialize gitignore service
	var ignore directory.IgnoreMatcher
	svc, err := gitutil.NewService(canonicalRoot)
	if err != nil {
		// Log error but continue with NoOpService
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize gitignore service: %v\n", err)
		ignore = &gitutil.NoOpService{}
	} else {
		ignore = svc
	}

	listTool := directory.NewListTool(resolver, ignore, cfg)
	findTool := directory.NewFindTool(resolver, ignore, cfg)
	readTool := file.NewReadFileTool(resolver, cfg)
	writeTool := file.NewWriteFileTool(resolver, cfg)
	scriptTool := shell.NewScriptTool(resolver, cfg)
	commandTool := shell.NewCommandTool(resolver, cfg, orchestrator.DefaultCommandWhitelist)

	tools := []orchadapter.Tool{
		orchadapter.NewGetFilesInfo(listTool),
		orchadapter.NewGetFileContent(readTool),
		orchadapter.NewWriteFile(writeTool),
		orchadapter.NewRunPythonFile(scriptTool),
		orchadapter.NewFindFile(findTool),
	}
	if cfg.Agent.ShellCommandsEnabled {
		tools = append(tools, orchadapter.NewShellCommand(commandTool))
	}

	return tools, canonicalRoot, nil
}

func promptsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", config.ConfigDir, "prompts"), nil
}

func main() {
	// Load configuration (from defaults + ~/.config/funcall/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	deps := Dependencies{
		Config:          cfg,
		UI:              createRealUI(),
		ProviderFactory: createRealProviderFactory(cfg),
	}

	// The UI manages its own lifecycle via Ctrl+C / Quit messages, so
	// interactive mode runs off context.Background().
	runInteractive(context.Background(), deps)
}

func runInteractive(ctx context.Context, deps Dependencies) {
	userInterface := deps.UI
	cfg := deps.Config

	orchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	// Shared between the REPL and command-handler goroutines. Built once by
	// the init goroutine before agentReady closes; after that the session
	// mutex serializes command handling against in-flight requests.
	var sess *session
	agentReady := make(chan struct{})

	// Goroutine #1: Initialize & REPL
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-userInterface.Ready()

		userInterface.WriteStatus("thinking", "Initializing workspace...")

		workspaceRoot, err := os.Getwd()
		if err != nil {
			failStartup(userInterface, fmt.Errorf("failed to get working directory: %w", err))
			return
		}

		toolList, canonicalRoot, err := createTools(cfg, workspaceRoot)
		if err != nil {
			failStartup(userInterface, err)
			return
		}

		reg, err := orchestrator.NewRegistry(toolList...)
		if err != nil {
			failStartup(userInterface, err)
			return
		}

		userInterface.WriteStatus("thinking", "Initializing model provider...")

		p, err := deps.ProviderFactory(orchCtx)
		if err != nil {
			failStartup(userInterface, err)
			return
		}

		// System prompts from ~/.config/funcall/prompts, seeded with the
		// built-ins on first run.
		dir, err := promptsDir()
		if err != nil {
			failStartup(userInterface, fmt.Errorf("failed to locate prompts directory: %w", err))
			return
		}
		manager := prompt.NewManager(dir)
		if err := manager.EnsureDirectory(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to export built-in prompts: %v\n", err)
		}
		if err := manager.Reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load prompts: %v\n", err)
		}
		if err := manager.Watch(orchCtx, func() {
			userInterface.WriteMessage("Prompt files changed on disk. Use /prompt <name> to pick one up.")
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: prompt watching disabled: %v\n", err)
		}

		loadedPresets, err := config.LoadPresets(config.ConfigFileReader{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load presets: %v\n", err)
			loadedPresets = nil
		}

		policy := orchmodels.SafetyPolicy{
			WorkspaceRoot:    canonicalRoot,
			CommandWhitelist: orchestrator.DefaultCommandWhitelist,
		}
		safety := orchestrator.NewSafetyService(policy, reg.Policies())

		agent := orchestrator.New(p, safety, userInterface, reg.Tools(), cfg)

		sess = &session{
			cfg:      cfg,
			ui:       userInterface,
			provider: p,
			orch:     agent,
			registry: reg,
			manager:  manager,
			presets:  loadedPresets,
		}

		systemPrompt, ok := sess.composeSystemPrompt(cfg.Prompt)
		if !ok {
			userInterface.WriteMessage(fmt.Sprintf("Unknown prompt %q, falling back to %q.", cfg.Prompt, prompt.DefaultName))
			cfg.Prompt = prompt.DefaultName
			systemPrompt, _ = sess.composeSystemPrompt(prompt.DefaultName)
		}
		agent.StartConversation(systemPrompt)
		close(agentReady)

		userInterface.SetStatusLine(cfg.Model, cfg.Prompt)
		userInterface.WriteStatus("ready", "Ready")

		// === REPL LOOP ===
		for {
			select {
			case <-orchCtx.Done():
				return
			default:
				input, err := userInterface.ReadInput(orchCtx, "You: ")
				if err != nil {
					return // UI closed or context cancelled
				}

				answer, err := sess.runRequest(orchCtx, input)
				if err != nil {
					userInterface.WriteStatus("error", "Request failed")
					userInterface.WriteMessage(fmt.Sprintf("Error: %v", err))
				} else {
					userInterface.WriteStatus("done", "")
					userInterface.WriteMessage(answer)
				}

				userInterface.WriteStatus("ready", "Ready")
			}
		}
	}()

	// Goroutine #2: Command handler
	wg.Add(1)
	go func() {
		defer wg.Done()

		for {
			select {
			case <-orchCtx.Done():
				return
			case cmd := <-userInterface.Commands():
				select {
				case <-agentReady:
				case <-orchCtx.Done():
					return
				}
				sess.handleCommand(orchCtx, cmd)
			}
		}
	}()

	// Run UI in main thread (blocks until exit)
	if err := userInterface.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running UI: %v\n", err)
		os.Exit(1)
	}

	cancel()
	wg.Wait()
}

func enabledWord(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func failStartup(userInterface *ui.UI, err error) {
	userInterface.WriteStatus("error", "Initialization failed")
	userInterface.WriteMessage(fmt.Sprintf("Error: %v", err))
	userInterface.WriteMessage("The application cannot start. Press Ctrl+C to exit.")
}

// sessionUI is the slice of the terminal UI that command handling writes to.
type sessionUI interface {
	WriteMessage(content string)
	WriteModelList(models []string)
	SetStatusLine(model string, prompt string)
}

// session holds the pieces of agent state that both the REPL and the
// command handler touch. The mutex serializes the two: a command can
// never mutate the config or reset the conversation while a request is
// in flight.
type session struct {
	mu       sync.Mutex
	cfg      *config.Config
	ui       sessionUI
	provider providermodels.Provider
	orch     *orchestrator.Orchestrator
	registry *orchestrator.Registry
	manager  *prompt.Manager
	presets  *config.Presets
}

func (s *session) composeSystemPrompt(name string) (string, bool) {
	base, ok := s.manager.Load(name)
	if !ok {
		return "", false
	}
	return prompt.Compose(base, s.registry.Definitions(), s.cfg.Agent.ShellCommandsEnabled), true
}

// runRequest runs one user request under the session lock.
func (s *session) runRequest(ctx context.Context, input string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orch.HandleRequest(ctx, input)
}

func (s *session) handleCommand(ctx context.Context, cmd ui.UICommand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Type {
	case "list_models":
		models, err := s.provider.ListModels(ctx)
		if err != nil {
			s.ui.WriteMessage(fmt.Sprintf("Error listing models: %v", err))
			return
		}
		if len(models) == 0 {
			s.ui.WriteMessage("No models available on the server.")
			return
		}
		s.ui.WriteModelList(models)

	case "switch_model":
		model := cmd.Args["model"]
		if model == "" {
			return
		}
		s.cfg.Model = model
		s.ui.SetStatusLine(model, "")
		s.ui.WriteMessage(fmt.Sprintf("Switched to model: %s", model))

	case "list_prompts":
		infos := s.manager.List()
		text := "Available prompts:\n"
		for _, info := range infos {
			text += fmt.Sprintf("- %s (%s): %s\n", info.Name, info.Source, info.Description)
		}
		s.ui.WriteMessage(text)

	case "switch_prompt":
		name := cmd.Args["prompt"]
		if err := s.manager.Reload(); err != nil {
			s.ui.WriteMessage(fmt.Sprintf("Error reloading prompts: %v", err))
			return
		}
		systemPrompt, ok := s.composeSystemPrompt(name)
		if !ok {
			s.ui.WriteMessage(fmt.Sprintf("Unknown prompt: %s (try /prompts)", name))
			return
		}
		s.cfg.Prompt = name
		s.orch.StartConversation(systemPrompt)
		s.ui.SetStatusLine("", name)
		s.ui.WriteMessage(fmt.Sprintf("Switched to prompt %q. Conversation reset.", name))

	case "show_status":
		s.ui.WriteMessage(fmt.Sprintf(
			"Session:\n- provider: %s\n- model: %s\n- prompt: %s\n- turn limit: %d function calls\n- shell commands: %s\n- functions: %s",
			s.provider.Name(),
			s.cfg.Model,
			s.cfg.Prompt,
			s.cfg.Agent.MaxFunctionCalls,
			enabledWord(s.cfg.Agent.ShellCommandsEnabled),
			strings.Join(s.registry.Names(), ", "),
		))

	case "shell_status":
		if s.cfg.Agent.ShellCommandsEnabled {
			s.ui.WriteMessage(fmt.Sprintf(
				"Shell commands are enabled. Whitelist: %s. Disable with agent.shell_commands_enabled in config.json.",
				strings.Join(orchestrator.DefaultCommandWhitelist, ", ")))
		} else {
			s.ui.WriteMessage("Shell commands are disabled. Enable with agent.shell_commands_enabled in config.json (takes effect on restart).")
		}

	case "list_presets":
		if s.presets == nil || len(s.presets.Names()) == 0 {
			s.ui.WriteMessage("No generation presets configured. Add them to presets.toml.")
			return
		}
		text := "Available presets:\n"
		for _, name := range s.presets.Names() {
			text += fmt.Sprintf("- %s\n", name)
		}
		s.ui.WriteMessage(text)

	case "switch_preset":
		name := cmd.Args["preset"]
		if s.presets == nil {
			s.ui.WriteMessage("No generation presets configured.")
			return
		}
		gen, ok := s.presets.Get(name)
		if !ok {
			s.ui.WriteMessage(fmt.Sprintf("Unknown preset: %s (try /presets)", name))
			return
		}
		s.cfg.Generation = gen
		s.ui.WriteMessage(fmt.Sprintf("Applied generation preset %q.", name))
	}
}

// Package mcpserver exposes a previously built entity tree as two
// read-only MCP tools, cxxdoc_lookup and cxxdoc_list (C12).
package mcpserver

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cxxdoc/cxxdoc/internal/entity"
)

// Server wraps an mcp-go server over a fixed entity tree.
type Server struct {
	root *entity.Entity
	mcp  *server.MCPServer
}

// New builds a Server over root and registers its tools.
func New(root *entity.Entity) *Server {
	s := &Server{
		root: root,
		mcp: server.NewMCPServer(
			"cxxdoc-mcp",
			"1.0.0",
			server.WithToolCapabilities(true),
		),
	}
	s.registerLookup()
	s.registerList()
	return s
}

// Serve blocks until SIGINT/SIGTERM or a server error. An empty address
// serves over stdio; a non-empty one (cxxdoc.yaml's serve.address, §3.4)
// starts an SSE server bound to that address instead, for callers that
// cannot attach to this process's stdio (e.g. a remote agent host).
func (s *Server) Serve(ctx context.Context, address string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if address == "" {
			log.Printf("starting cxxdoc MCP server on stdio")
			if err := server.ServeStdio(s.mcp); err != nil {
				errCh <- fmt.Errorf("mcp server error: %w", err)
			}
			return
		}
		log.Printf("starting cxxdoc MCP server on %s (SSE)", address)
		sse := server.NewSSEServer(s.mcp)
		if err := sse.Start(address); err != nil {
			errCh <- fmt.Errorf("mcp server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("received shutdown signal, stopping")
		cancel()
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) registerLookup() {
	tool := mcp.NewTool(
		"cxxdoc_lookup",
		mcp.WithDescription("Resolve a dotted entity path (e.g. ns.Type.method) to its rendered Markdown documentation."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Dotted path from the tree root to the entity")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
	s.mcp.AddTool(tool, func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, ok := req.GetArguments()["path"].(string)
		if !ok || path == "" {
			return mcp.NewToolResultError("path parameter is required"), nil
		}
		e := resolve(s.root, strings.Split(path, "."))
		if e == nil {
			return mcp.NewToolResultError(fmt.Sprintf("no entity at path %q", path)), nil
		}
		if e.Hide {
			return mcp.NewToolResultError(fmt.Sprintf("entity at path %q is hidden", path)), nil
		}
		return mcp.NewToolResultText(render(e)), nil
	})
}

func (s *Server) registerList() {
	tool := mcp.NewTool(
		"cxxdoc_list",
		mcp.WithDescription("List child names of a given kind under a dotted entity path."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("namespace|type|variable|function|operator|enumerator|macro|group")),
		mcp.WithString("under", mcp.Description("Dotted path; empty means the tree root")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
	)
	s.mcp.AddTool(tool, func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		kind, _ := args["kind"].(string)
		under, _ := args["under"].(string)

		base := s.root
		if under != "" {
			base = resolve(s.root, strings.Split(under, "."))
		}
		if base == nil {
			return mcp.NewToolResultError(fmt.Sprintf("no entity at path %q", under)), nil
		}
		set := childSetByKindName(base, kind)
		if set == nil {
			return mcp.NewToolResultError(fmt.Sprintf("unrecognized kind %q", kind)), nil
		}

		var names []string
		for _, n := range set.Names() {
			if children := set.At(n); len(children) > 0 && !children[0].Hide {
				names = append(names, n)
			}
		}
		return mcp.NewToolResultText(strings.Join(names, "\n")), nil
	})
}

// resolve walks segments from root through child entities by name,
// searching every child-kind map at each level.
func resolve(root *entity.Entity, segments []string) *entity.Entity {
	cur := root
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		next := findChild(cur, seg)
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

func findChild(e *entity.Entity, name string) *entity.Entity {
	for _, set := range allChildSets(e) {
		if matches := set.At(name); len(matches) > 0 {
			return matches[0]
		}
	}
	return nil
}

func allChildSets(e *entity.Entity) []*entity.ChildSet {
	return []*entity.ChildSet{e.Namespaces, e.Types, e.Variables, e.Enumerators, e.Macros, e.Groups, e.Functions, e.Operators}
}

func childSetByKindName(e *entity.Entity, kind string) *entity.ChildSet {
	switch kind {
	case "namespace":
		return e.Namespaces
	case "type":
		return e.Types
	case "variable":
		return e.Variables
	case "enumerator":
		return e.Enumerators
	case "macro":
		return e.Macros
	case "group":
		return e.Groups
	case "function":
		return e.Functions
	case "operator":
		return e.Operators
	default:
		return nil
	}
}

func render(e *entity.Entity) string {
	var b strings.Builder
	title := e.Name
	if title == "" {
		title = e.Kind.String()
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if e.Decl != "" {
		fmt.Fprintf(&b, "```cpp\n%s\n```\n\n", e.Decl)
	}
	b.WriteString(e.Docs)
	return b.String()
}

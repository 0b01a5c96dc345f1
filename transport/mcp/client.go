package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/pentomino/game/engine"
	"github.com/wricardo/mcp-training/pentomino/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Pentomino Board",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Pentomino Board - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Tile the 6x10 board with all 12 pentominoes. Every piece covers exactly 5 cells.

AVAILABLE TOOLS:
- create_session: Create new game session
- list_sessions: List all active sessions
- get_session: Get session details
- game_state: Board, remaining pieces and selection
- select_piece: Select a piece from the pool by id
- rotate_piece: Rotate the selected piece 90 degrees clockwise
- flip_piece: Mirror the selected piece (horizontal or vertical axis)
- place_piece: Drop a piece centered on a board cell
- undo: Take back the last placement
- reset_game: Start over with the full pool
- action_history: Paginated log of every action
- list_configs: List available puzzle presets
- game_instructions: Rules and placement strategy
- describe_cell: Check whether one cell is free`),
	)

	c.registerTools()
}

func sessionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Session ID",
	}
}

func sessionOnlySchema() mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"session_id": sessionProperty(),
		},
		Required: []string{"session_id"},
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Preset to use (optional, see list_configs)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: sessionOnlySchema(),
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, remaining pieces and selected piece",
		InputSchema: sessionOnlySchema(),
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "select_piece",
		Description: "Select a piece from the available pool. Rotations and flips apply to the selected piece.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"piece_id": map[string]interface{}{
					"type":        "integer",
					"description": "Piece id (1-12, see game_state for the pool)",
				},
			},
			Required: []string{"session_id", "piece_id"},
		},
	}, c.handleSelectPiece)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "rotate_piece",
		Description: "Rotate the selected piece 90 degrees clockwise",
		InputSchema: sessionOnlySchema(),
	}, c.handleRotatePiece)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "flip_piece",
		Description: "Mirror the selected piece",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"axis": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"horizontal", "vertical"},
					"description": "horizontal mirrors left/right, vertical mirrors top/bottom",
				},
			},
			Required: []string{"session_id", "axis"},
		},
	}, c.handleFlipPiece)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "place_piece",
		Description: "Drop a piece on the board. The piece's bounding box is centered on (row, col) and clamped inside the board.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Target row (0-5)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Target column (0-9)",
				},
				"piece_id": map[string]interface{}{
					"type":        "integer",
					"description": "Piece to place (optional, defaults to the selected piece)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of why this placement (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handlePlacePiece)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "undo",
		Description: "Remove the most recently placed piece and return it to the pool",
		InputSchema: sessionOnlySchema(),
	}, c.handleUndo)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the game to initial state",
		InputSchema: sessionOnlySchema(),
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "action_history",
		Description: "Get the action history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "Sort order (default desc, newest first)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleActionHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available puzzle presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Tell whether a board cell is empty or occupied and which piece covers it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionProperty(),
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the cell (0-based)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the cell (0-based)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	endpoint := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, endpoint, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

// intArg reads a JSON number argument. ok is false when it is absent.
func intArg(args map[string]interface{}, name string) (int, bool) {
	switch v := args[name].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	}
	return 0, false
}

func sessionPath(sessionID, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s", session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		placed := 0
		if s.GameState != nil {
			placed = len(s.GameState.Moves)
		}
		result += fmt.Sprintf("- %s (Config: %s, Placed: %d/%d, Created: %s)\n",
			s.ID, s.ConfigName, placed, engine.PieceCount, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", sessionPath(sessionID, ""), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", sessionPath(sessionID, "/state"), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleSelectPiece(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	pieceID, ok := intArg(args, "piece_id")
	if !ok {
		return mcp.NewToolResultError("piece_id is required"), nil
	}

	return c.action(sessionPath(sessionID, "/select"), map[string]int{"piece_id": pieceID})
}

func (c *Client) handleRotatePiece(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)
	return c.action(sessionPath(sessionID, "/rotate"), nil)
}

func (c *Client) handleFlipPiece(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	axis, _ := args["axis"].(string)

	return c.action(sessionPath(sessionID, "/flip"), map[string]string{"axis": axis})
}

func (c *Client) handlePlacePiece(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	row, okRow := intArg(args, "row")
	col, okCol := intArg(args, "col")
	if !okRow || !okCol {
		return mcp.NewToolResultError("row and col are required"), nil
	}

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	intent, _ := args["intent"].(string)
	_ = intent

	req := service.PlaceRequest{Row: row, Col: col}
	if pieceID, ok := intArg(args, "piece_id"); ok {
		req.PieceID = pieceID
	}

	return c.action(sessionPath(sessionID, "/place"), req)
}

func (c *Client) handleUndo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)
	return c.action(sessionPath(sessionID, "/undo"), nil)
}

// action posts one game action and formats the ActionResult
func (c *Client) action(path string, body interface{}) (*mcp.CallToolResult, error) {
	var result service.ActionResult
	if err := c.apiCall("POST", path, body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatActionResult(&result)), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", sessionPath(sessionID, "/reset"), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleActionHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	params := url.Values{}
	if page, ok := intArg(args, "page"); ok {
		params.Set("page", fmt.Sprint(page))
	}
	if limit, ok := intArg(args, "limit"); ok {
		params.Set("limit", fmt.Sprint(limit))
	}
	if order, ok := args["order"].(string); ok && order != "" {
		params.Set("order", order)
	}

	path := sessionPath(sessionID, "/history")
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var history service.HistoryResponse
	if err := c.apiCall("GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		order := "shuffled"
		switch {
		case config.FixedOrder:
			order = "fixed order"
		case config.Seeded:
			order = "seeded shuffle"
		}
		result += fmt.Sprintf("• %s (config_id: %s)\n  %s\n  Pieces: %s\n\n",
			config.Name, config.ConfigID, config.Description, order)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	b.WriteString(`Pentomino Board - Complete Instructions

GAME OBJECTIVE:
Cover every cell of the 6x10 board using each of the 12 pentominoes exactly once.

THE PIECES:
`)
	for _, piece := range engine.Catalog() {
		b.WriteString(fmt.Sprintf("%2d %s\n", piece.ID, piece.Name))
		for _, line := range strings.Split(piece.Shape.String(), "\n") {
			b.WriteString("     " + line + "\n")
		}
	}
	b.WriteString(`
BOARD LEGEND:
• . - Empty cell
• Letter - Cell covered by that piece (F I L N P T U V W X Y Z)

GAME MECHANICS:
• Select a piece first, then rotate or flip it. Transforms only apply to the selected piece.
• Rotation is 90 degrees clockwise. Four rotations bring a piece back to where it started.
• Placing drops the piece with its bounding box centered on the target cell.
  The box is clamped so it never hangs off the board.
• A placement that overlaps another piece is rejected and changes nothing.
• Undo removes the last placed piece and puts it back at the end of the pool.
• Rotations survive an undo, flips are kept in the piece's shape.

STRATEGY:
• The board has 60 cells and every piece covers 5. An enclosed empty region
  whose size is not a multiple of 5 can never be filled. Check the board after
  each placement and undo early when you create one.
• Fill corners and edges first. X and I are the least flexible pieces.
• Use describe_cell to check a target before placing.

VICTORY CONDITIONS:
- All 12 pieces placed and no empty cells remain
- Game displays "🎉 SOLVED!" when the board is full

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent boards, pools and history

Good luck!`)

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	row, okRow := intArg(args, "row")
	col, okCol := intArg(args, "col")
	if !okRow || !okCol {
		return mcp.NewToolResultError("row and col are required"), nil
	}

	var state engine.GameState
	err := c.apiCall("GET", sessionPath(sessionID, "/state"), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if row < 0 || row >= engine.Rows || col < 0 || col >= engine.Cols {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates (%d, %d) are out of bounds. Board is %dx%d (rows 0-%d, cols 0-%d)",
			row, col, engine.Rows, engine.Cols, engine.Rows-1, engine.Cols-1)), nil
	}

	owners := cellOwners(&state)
	status := "Empty"
	description := "Free cell - a piece can cover it"
	if name := owners[row][col]; name != "" {
		status = "Occupied"
		description = fmt.Sprintf("Covered by piece %s", name)
	} else if len(state.Board) > row && state.Board[row][col] {
		status = "Occupied"
		description = "Covered by a placed piece"
	}

	result := fmt.Sprintf(`Cell at row %d, col %d:
━━━━━━━━━━━━━━━━━━━━━━━━
Status: %s
Description: %s
Empty neighbors: %d`,
		row, col, status, description, emptyNeighbors(&state, row, col))

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

// cellOwners maps each occupied cell to the name of the piece covering it
func cellOwners(state *engine.GameState) [engine.Rows][engine.Cols]string {
	var owners [engine.Rows][engine.Cols]string
	for _, move := range state.Moves {
		for _, cell := range engine.ShapeCellsAt(move.Piece.Shape, move.Position) {
			if cell.Row >= 0 && cell.Row < engine.Rows && cell.Col >= 0 && cell.Col < engine.Cols {
				owners[cell.Row][cell.Col] = move.Piece.Name
			}
		}
	}
	return owners
}

func emptyNeighbors(state *engine.GameState, row, col int) int {
	count := 0
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= len(state.Board) || c < 0 || c >= len(state.Board[r]) {
			continue
		}
		if !state.Board[r][c] {
			count++
		}
	}
	return count
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Placed: %d/%d | Empty cells: %d | Actions: %d\n\n",
		len(state.Moves), engine.PieceCount, state.EmptyCells, state.TotalActions))

	// Board with column header
	owners := cellOwners(state)
	result.WriteString("   0123456789\n")
	for r := 0; r < len(state.Board); r++ {
		result.WriteString(fmt.Sprintf("%d  ", r))
		for c := 0; c < len(state.Board[r]); c++ {
			switch {
			case r < engine.Rows && c < engine.Cols && owners[r][c] != "":
				result.WriteString(owners[r][c])
			case state.Board[r][c]:
				result.WriteString("#")
			default:
				result.WriteString(".")
			}
		}
		result.WriteString("\n")
	}

	if state.SelectedPiece != nil {
		p := state.SelectedPiece
		result.WriteString(fmt.Sprintf("\nSelected: %s (id %d, rotation %d)\n", p.Name, p.ID, state.Rotations[p.ID]))
		result.WriteString(indent(p.Shape.String(), "  ") + "\n")
	}

	if len(state.AvailablePieces) > 0 {
		names := make([]string, 0, len(state.AvailablePieces))
		for _, p := range state.AvailablePieces {
			names = append(names, fmt.Sprintf("%s(%d)", p.Name, p.ID))
		}
		result.WriteString(fmt.Sprintf("\nAvailable: %s\n", strings.Join(names, " ")))
	}

	if !state.Parity {
		result.WriteString("\n⚠️ Empty cell count is not a multiple of 5")
	}

	if state.Complete {
		result.WriteString("\n🎉 SOLVED!")
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func formatActionResult(result *service.ActionResult) string {
	response := ""
	if result.Success {
		response = fmt.Sprintf("✓ %s successful\n", result.Action)
	} else {
		response = fmt.Sprintf("✗ %s failed\n", result.Action)
	}

	if p := result.Placement; p != nil {
		response += fmt.Sprintf("Piece %s dropped at (%d,%d) → top-left (%d,%d)\n",
			p.PieceName, p.Drop.Row, p.Drop.Col, p.TopLeft.Row, p.TopLeft.Col)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Action History (Page %d/%d) - Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalActions))

	for _, entry := range history.Actions {
		status := "✓"
		if !entry.Success {
			status = "✗"
		}
		line := fmt.Sprintf("%d. %s", entry.MoveNumber, entry.Action)
		if entry.PieceID != 0 {
			line += " " + engine.PieceName(entry.PieceID)
		}
		if entry.Drop != nil {
			line += fmt.Sprintf(" at (%d,%d)", entry.Drop.Row, entry.Drop.Col)
		}
		b.WriteString(fmt.Sprintf("%s %s\n", line, status))
	}

	if len(history.Actions) == 0 {
		b.WriteString("(no actions yet)\n")
	}

	return b.String()
}

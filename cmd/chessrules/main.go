// Command chessrules is a thin interactive front end for the rules engine.
// It owns no chess logic: every outcome shown here comes from the
// internal/game API.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/mwaldron/chessrules/internal/chess"
	"github.com/mwaldron/chessrules/internal/engine"
	"github.com/mwaldron/chessrules/internal/game"
)

var pieceGlyphs = map[chess.Piece]string{
	chess.W(chess.Pawn):   "♙",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.King):   "♔",
	chess.B(chess.Pawn):   "♟",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.King):   "♚",
}

var (
	whitePiece  = color.New(color.FgHiWhite)
	blackPiece  = color.New(color.FgHiYellow)
	checkSquare = color.New(color.FgHiWhite, color.BgRed)
	dimText     = color.New(color.Faint)
)

func main() {
	g := game.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("chessrules - type 'help' for commands")
	printBoard(g)

	for {
		fmt.Printf("%s> ", g.Turn())
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(strings.ToLower(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			printHelp()
		case "new":
			g.Reset()
			printBoard(g)
		case "board":
			printBoard(g)
		case "fen":
			fmt.Println(g.FEN())
		case "history":
			printHistory(g)
		case "undo":
			if err := g.Undo(); err != nil {
				fmt.Println(err)
				continue
			}
			printBoard(g)
		case "moves":
			if len(fields) != 2 {
				fmt.Println("usage: moves <square>")
				continue
			}
			printMoves(g, fields[1])
		case "move":
			if len(fields) != 2 {
				fmt.Println("usage: move <from><to>[qrbn]")
				continue
			}
			doMove(g, fields[1])
		default:
			// Bare coordinate input works as a move command.
			doMove(g, fields[0])
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  move e2e4     make a move (e7e8q to promote; also works without 'move')
  moves e2      list legal moves from a square
  undo          take back the last move
  history       show the move log
  board         redraw the board
  fen           print the position as FEN
  new           start a new game
  quit          leave`)
}

func doMove(g *game.Game, text string) {
	if len(text) != 4 && len(text) != 5 {
		fmt.Println("moves look like e2e4 or e7e8q")
		return
	}
	from, err := chess.ParseSquare(text[:2])
	if err != nil {
		fmt.Println(err)
		return
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		fmt.Println(err)
		return
	}

	var m chess.Move
	var status engine.Status
	if len(text) == 5 {
		m, status, err = g.AttemptPromotion(from, to, promotionKind(text[4]))
	} else {
		m, status, err = g.AttemptMove(from, to)
	}
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(engine.EncodeNotation(m))
	printBoard(g)
	switch status {
	case engine.StatusCheck:
		fmt.Printf("%s is in check\n", g.Turn())
	case engine.StatusCheckmate:
		fmt.Printf("checkmate - %s wins\n", g.Turn().Opposite())
	case engine.StatusStalemate:
		fmt.Println("stalemate")
	case engine.StatusDraw:
		fmt.Println("draw")
	}
}

func promotionKind(c byte) chess.Piece {
	switch c {
	case 'r':
		return chess.Rook
	case 'b':
		return chess.Bishop
	case 'n':
		return chess.Knight
	default:
		return chess.Queen
	}
}

func printMoves(g *game.Game, text string) {
	sq, err := chess.ParseSquare(text)
	if err != nil {
		fmt.Println(err)
		return
	}
	moves := g.ValidMoves(sq)
	if len(moves) == 0 {
		fmt.Println("no legal moves from", sq)
		return
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = engine.EncodeNotation(m)
	}
	fmt.Println(strings.Join(parts, " "))
}

func printHistory(g *game.Game) {
	history := g.History()
	if len(history) == 0 {
		fmt.Println("no moves yet")
		return
	}
	var sb strings.Builder
	for i, entry := range history {
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(entry.Notation)
		sb.WriteByte(' ')
	}
	fmt.Println(strings.TrimSpace(sb.String()))
}

func printBoard(g *game.Game) {
	board := g.Board()
	highlight, hasCheck := g.CheckSquare()

	for rank := chess.Rank('8'); rank >= '1'; rank-- {
		fmt.Printf("%c ", rank)
		for col := chess.Col('a'); col <= 'h'; col++ {
			piece := board.Get(col, rank)
			cell := chess.Square{Col: col, Rank: rank}

			glyph, ok := pieceGlyphs[piece]
			if !ok {
				dimText.Print("· ")
				continue
			}

			painter := whitePiece
			if chess.ExtractColour(piece) == chess.Black {
				painter = blackPiece
			}
			if hasCheck && cell == highlight {
				painter = checkSquare
			}
			painter.Print(glyph)
			fmt.Print(" ")
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")

	captured := func(c chess.Colour) string {
		var sb strings.Builder
		for _, kind := range g.Captured(c) {
			sb.WriteString(pieceGlyphs[chess.MakeColouredPiece(c, kind)])
		}
		return sb.String()
	}
	if w, b := captured(chess.White), captured(chess.Black); w != "" || b != "" {
		dimText.Printf("captured: white %s  black %s\n", w, b)
	}
}

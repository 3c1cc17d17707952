package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/MdMxMyr/Automata-engine/internal/app"
	"github.com/MdMxMyr/Automata-engine/internal/core"
	"github.com/MdMxMyr/Automata-engine/pkg/automata"

	"github.com/gorilla/websocket"
)

// AutomatonState is one active automaton in a Frame.
type AutomatonState struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	TypeID string `json:"type_id"`
	State  int    `json:"state"`
}

// Frame is the message pushed to every subscriber after each generation.
type Frame struct {
	Generation int              `json:"generation"`
	Rows       int              `json:"rows"`
	Cols       int              `json:"cols"`
	Resolution int              `json:"resolution"`
	Automata   []AutomatonState `json:"automata"`
	// Counts holds the number of active automata per cell in row-major order.
	Counts []int `json:"counts"`
}

// Snapshot builds a Frame from the current generation of g.
func Snapshot(g *automata.Grid) Frame {
	f := Frame{
		Generation: g.Generation(),
		Rows:       g.Rows(),
		Cols:       g.Cols(),
		Resolution: g.Resolution(),
		Automata:   []AutomatonState{},
	}
	counts := core.NewByteGrid(g.Rows(), g.Cols())
	counts.Capture(g)
	f.Counts = make([]int, len(counts.Cells()))
	for i, n := range counts.Cells() {
		f.Counts[i] = int(n)
	}
	for _, c := range g.Cells() {
		for _, a := range c.Population() {
			if a.State() <= 0 {
				continue
			}
			f.Automata = append(f.Automata, AutomatonState{
				Row:    c.Row(),
				Col:    c.Col(),
				TypeID: a.TypeID(),
				State:  a.State(),
			})
		}
	}
	return f
}

// Server advances a simulation on a ticker and streams each generation to
// websocket subscribers.
type Server struct {
	sim      *app.Simulation
	timer    *core.FixedStep
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// NewServer wraps sim. Its tick rate comes from the simulation's config.
func NewServer(sim *app.Simulation) *Server {
	return &Server{
		sim:   sim,
		timer: core.NewFixedStep(sim.Config().TPS),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the HTTP routes: /ws, /status and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.Subscribe)
	mux.HandleFunc("/status", s.Status)
	mux.HandleFunc("/health", s.HealthCheck)
	return mux
}

// Subscribe upgrades the connection and sends the current frame. The client
// then receives one frame per generation until it disconnects.
func (s *Server) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	frame := s.frame()
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	err = conn.WriteJSON(frame)
	s.mu.Unlock()
	if err != nil {
		log.Printf("Failed to send initial frame: %v", err)
		s.drop(conn)
		return
	}
	log.Printf("Subscriber %s connected", conn.RemoteAddr())

	go s.readLoop(conn)
}

// readLoop discards inbound messages and unregisters the client when the
// connection closes.
func (s *Server) readLoop(conn *websocket.Conn) {
	defer s.drop(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	_, ok := s.clients[conn]
	delete(s.clients, conn)
	s.mu.Unlock()
	if ok {
		conn.Close()
		log.Printf("Subscriber %s disconnected", conn.RemoteAddr())
	}
}

// Clients reports the number of connected subscribers.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) frame() Frame {
	var f Frame
	s.sim.View(func(g *automata.Grid) { f = Snapshot(g) })
	return f
}

// Broadcast sends the current frame to every subscriber. Clients whose write
// fails are dropped.
func (s *Server) Broadcast() {
	frame := s.frame()

	var failed []*websocket.Conn
	s.mu.Lock()
	for conn := range s.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(frame); err != nil {
			log.Printf("Failed to send frame %d to %s: %v", frame.Generation, conn.RemoteAddr(), err)
			failed = append(failed, conn)
		}
	}
	s.mu.Unlock()

	for _, conn := range failed {
		s.drop(conn)
	}
}

// Tick advances one generation and broadcasts it.
func (s *Server) Tick() error {
	if _, err := s.sim.Step(); err != nil {
		return fmt.Errorf("advance: %w", err)
	}
	s.Broadcast()
	return nil
}

// Run ticks until ctx is cancelled or the generation limit is reached.
func (s *Server) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.timer.Step())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Stream simulation stopped")
			return nil
		case <-ticker.C:
			if err := s.Tick(); err != nil {
				return err
			}
			if s.sim.Done() {
				log.Println("Stream simulation finished.")
				return nil
			}
		}
	}
}

// Close disconnects every subscriber.
func (s *Server) Close() {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()
	for _, conn := range conns {
		s.drop(conn)
	}
}

// HealthCheck reports that the server is up.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// Status returns the current census as JSON.
func (s *Server) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.sim.Census())
}

package diagram

import "fmt"

// NodeSpec is one node record in a layout table.
type NodeSpec struct {
	X, Y, W, H float64
	Label      string
	Style      string
}

// ConnectorSpec is one arrow record in a layout table.
type ConnectorSpec struct {
	X1, Y1, X2, Y2 float64
}

// Layout is a complete diagram description: surface extent plus the node,
// connector, and label records to replay onto it. Layouts are plain data;
// Compose turns one into a drawn Surface.
type Layout struct {
	Width, Height float64
	Nodes         []NodeSpec
	Connectors    []ConnectorSpec
	Labels        []Label
}

// Compose replays the layout onto a fresh surface. It fails on the first
// node whose style key is not in the default palette; nothing is partially
// reusable after a failure.
func Compose(l Layout) (*Surface, error) {
	s := NewSurface(l.Width, l.Height)
	for _, n := range l.Nodes {
		if err := s.PlaceNode(n.X, n.Y, n.W, n.H, n.Label, n.Style); err != nil {
			return nil, fmt.Errorf("compose: %w", err)
		}
	}
	for _, c := range l.Connectors {
		s.DrawConnector(c.X1, c.Y1, c.X2, c.Y2)
	}
	for _, t := range l.Labels {
		s.PlaceText(t)
	}
	return s, nil
}

// Row baselines of the five architecture layers, bottom edge of each row
// of nodes in surface units.
const (
	frontendY = 9.5
	stateY    = 7.5
	apiY      = 5.5
	aiY       = 3.5
	dataY     = 1.5
)

// legendText is the key-features callout rendered bottom-left with a
// background box.
const legendText = `Key Features:
• Real-time streaming responses
• Semantic search with embeddings
• HyDE query enhancement
• Course-specific conversations
• Two-column expandable layout
• Markdown export functionality`

// FlowMindLayout returns the built-in FlowMind architecture layout:
// five layers top to bottom (frontend, state, API, AI services, data),
// 19 nodes and 20 flow arrows. Every coordinate is a hand-picked literal;
// the diagram is a fixed illustration, so there is deliberately no
// automatic placement or edge routing here.
func FlowMindLayout() Layout {
	return Layout{
		Width:  16,
		Height: 12,
		Nodes: []NodeSpec{
			// Layer 1: frontend components
			{X: 1, Y: frontendY, W: 2, H: 1, Label: "User Interface\nChatInterface", Style: "frontend"},
			{X: 3.5, Y: frontendY, W: 2, H: 1, Label: "Welcome\nScreen", Style: "frontend"},
			{X: 6, Y: frontendY, W: 2, H: 1, Label: "Course\nSelector", Style: "frontend"},
			{X: 8.5, Y: frontendY, W: 2, H: 1, Label: "Messages\nContainer", Style: "frontend"},
			{X: 11, Y: frontendY, W: 2, H: 1, Label: "Message\nDetail Panel", Style: "frontend"},
			{X: 13.5, Y: frontendY, W: 2, H: 1, Label: "Chat Input\n& Header", Style: "frontend"},

			// Layer 2: state management
			{X: 7, Y: stateY, W: 2.5, H: 1, Label: "Zustand Store\nConversation State", Style: "state"},

			// Layer 3: API layer
			{X: 2, Y: apiY, W: 2.5, H: 1, Label: "Chat API\n/api/chat", Style: "api"},
			{X: 5.5, Y: apiY, W: 2.5, H: 1, Label: "RAG System\nRetrieval Logic", Style: "api"},
			{X: 9, Y: apiY, W: 2.5, H: 1, Label: "Local RAG\nFallback", Style: "api"},
			{X: 12, Y: apiY, W: 2.5, H: 1, Label: "Qdrant\nVector DB", Style: "api"},

			// Layer 4: AI services
			{X: 3, Y: aiY, W: 2.5, H: 1, Label: "OpenAI API\nGPT-4o-mini", Style: "ai"},
			{X: 6.5, Y: aiY, W: 2.5, H: 1, Label: "Embeddings\ntext-embedding", Style: "ai"},
			{X: 10, Y: aiY, W: 2.5, H: 1, Label: "HyDE System\nQuery Enhancement", Style: "ai"},

			// Layer 5: data layer
			{X: 2, Y: dataY, W: 2, H: 1, Label: "VTT\nTranscripts", Style: "data"},
			{X: 4.5, Y: dataY, W: 2, H: 1, Label: "Content\nChunks", Style: "data"},
			{X: 7, Y: dataY, W: 2, H: 1, Label: "Vector Store\nEmbeddings", Style: "data"},
			{X: 9.5, Y: dataY, W: 2, H: 1, Label: "Metadata\nTimestamps", Style: "data"},
			{X: 12, Y: dataY, W: 2.5, H: 1, Label: "Search Results\nRelevance Scoring", Style: "data"},
		},
		Connectors: []ConnectorSpec{
			// Frontend to state
			{X1: 2, Y1: frontendY, X2: 8, Y2: stateY + 1},
			{X1: 7, Y1: frontendY, X2: 8, Y2: stateY + 1},
			{X1: 9.5, Y1: frontendY, X2: 8.5, Y2: stateY + 1},

			// Frontend to API
			{X1: 2, Y1: frontendY, X2: 3, Y2: apiY + 1},
			{X1: 14.5, Y1: frontendY, X2: 3.5, Y2: apiY + 1},

			// State to API
			{X1: 8, Y1: stateY, X2: 6.5, Y2: apiY + 1},

			// API internal flow
			{X1: 3.5, Y1: apiY, X2: 6.5, Y2: apiY + 0.5},
			{X1: 7, Y1: apiY, X2: 10, Y2: apiY + 0.5},
			{X1: 8, Y1: apiY, X2: 13, Y2: apiY + 0.5},

			// API to AI
			{X1: 3.5, Y1: apiY, X2: 4, Y2: aiY + 1},
			{X1: 6.5, Y1: apiY, X2: 7.5, Y2: aiY + 1},
			{X1: 7, Y1: apiY, X2: 11, Y2: aiY + 1},

			// Data processing flow
			{X1: 3, Y1: dataY + 1, X2: 5.5, Y2: dataY + 1},
			{X1: 5.5, Y1: dataY + 1, X2: 8, Y2: dataY + 1},
			{X1: 8, Y1: dataY + 1, X2: 10.5, Y2: dataY + 1},
			{X1: 10, Y1: dataY + 1, X2: 13, Y2: dataY + 1},

			// AI to data
			{X1: 7.5, Y1: aiY, X2: 8, Y2: dataY + 1},
			{X1: 11, Y1: aiY, X2: 13, Y2: dataY + 1},

			// Return flows
			{X1: 8, Y1: dataY + 1, X2: 6.5, Y2: apiY},
			{X1: 4, Y1: aiY, X2: 3, Y2: apiY},
		},
		Labels: []Label{
			{X: 8, Y: 11.5, Text: "FlowMind Architecture Flow", Align: AlignCenter, VAlign: VAlignCenter, Size: 20, Bold: true, Color: "#2D3748"},

			{X: 0.2, Y: frontendY + 0.5, Text: "Frontend\nLayer", Size: 10, Bold: true, Color: "#1976D2"},
			{X: 0.2, Y: stateY + 0.5, Text: "State\nLayer", Size: 10, Bold: true, Color: "#F57C00"},
			{X: 0.2, Y: apiY + 0.5, Text: "API\nLayer", Size: 10, Bold: true, Color: "#388E3C"},
			{X: 0.2, Y: aiY + 0.5, Text: "AI\nServices", Size: 10, Bold: true, Color: "#7B1FA2"},
			{X: 0.2, Y: dataY + 0.5, Text: "Data\nLayer", Size: 10, Bold: true, Color: "#FBC02D"},

			{X: 0.5, Y: 0.5, Text: legendText, VAlign: VAlignBottom, Size: 8, Boxed: true},
		},
	}
}

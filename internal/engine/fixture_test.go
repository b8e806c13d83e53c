package engine

import (
	"testing"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
)

// fixtureStations is a small cut of the Shanghai network carrying the cases
// the engine must get right: the 人民广场 interchange hub, the 浦东南路
// same-corridor pair on lines 2 and 14, and the line 16 branch whose eight
// stations share every guessable attribute.
func fixtureStations() []dataset.Station {
	return []dataset.Station{
		{ID: 2180, Name: "人民广场", Lines: []string{"8号线", "1号线", "2号线"}, Adjacent: []int{2489, 1985, 2248, 2351, 2384, 2322}, District: "黄浦区", Year: 1995},
		{ID: 2489, Name: "曲阜路", Lines: []string{"8号线"}, Adjacent: []int{2180}, District: "静安区", Year: 2007},
		{ID: 1985, Name: "大世界", Lines: []string{"8号线"}, Adjacent: []int{2180}, District: "黄浦区", Year: 2007},
		{ID: 2248, Name: "新闸路", Lines: []string{"1号线"}, Adjacent: []int{2180}, District: "静安区", Year: 1995},
		{ID: 2351, Name: "黄陂南路", Lines: []string{"1号线"}, Adjacent: []int{2180}, District: "黄浦区", Year: 1995},
		{ID: 2384, Name: "南京东路", Lines: []string{"2号线", "10号线"}, Adjacent: []int{2180, 3003}, District: "黄浦区", Year: 2000},
		{ID: 2322, Name: "南京西路", Lines: []string{"2号线", "12号线", "13号线"}, Adjacent: []int{2180}, District: "静安区", Year: 2000},
		{ID: 3003, Name: "陆家嘴", Lines: []string{"2号线", "14号线"}, Adjacent: []int{2384, 3001, 3002, 4009}, District: "浦东新区", Year: 1999},
		{ID: 3001, Name: "浦东南路（2号线）", Lines: []string{"2号线"}, Adjacent: []int{3003}, District: "浦东新区", Year: 2000},
		{ID: 3002, Name: "浦东南路（14号线）", Lines: []string{"14号线"}, Adjacent: []int{3003}, District: "浦东新区", Year: 2021},
		{ID: 4009, Name: "龙阳路", Lines: []string{"2号线", "7号线", "16号线"}, Adjacent: []int{3003, 4008}, District: "浦东新区", Year: 1999},
		{ID: 4008, Name: "迎春路", Lines: []string{"16号线"}, Adjacent: []int{4009, 4007}, District: "浦东新区", Year: 2013},
		{ID: 4007, Name: "康桥", Lines: []string{"16号线"}, Adjacent: []int{4008, 4006}, District: "浦东新区", Year: 2013},
		{ID: 4006, Name: "周浦", Lines: []string{"16号线"}, Adjacent: []int{4007, 4005}, District: "浦东新区", Year: 2013},
		{ID: 4005, Name: "繁荣路", Lines: []string{"16号线"}, Adjacent: []int{4006, 4004}, District: "浦东新区", Year: 2013},
		{ID: 4004, Name: "沈梅路", Lines: []string{"16号线"}, Adjacent: []int{4005, 4003}, District: "浦东新区", Year: 2013},
		{ID: 4003, Name: "鹤涛路", Lines: []string{"16号线"}, Adjacent: []int{4004, 4002}, District: "浦东新区", Year: 2013},
		{ID: 4002, Name: "下沙", Lines: []string{"16号线"}, Adjacent: []int{4003, 4001}, District: "浦东新区", Year: 2013},
		{ID: 4001, Name: "航头", Lines: []string{"16号线"}, Adjacent: []int{4002}, District: "浦东新区", Year: 2013},
	}
}

func fixtureGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(fixtureStations())
	if err != nil {
		t.Fatalf("failed to build fixture graph: %v", err)
	}
	return g
}

func mustStation(t *testing.T, g *graph.Graph, name string) *dataset.Station {
	t.Helper()
	s := g.ByName(name)
	if s == nil {
		t.Fatalf("fixture station %q not found", name)
	}
	return s
}

// disconnectedGraph has two stations with no adjacency and no shared line,
// for exercising the unreachable fault path.
func disconnectedGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New([]dataset.Station{
		{ID: 1, Name: "孤岛一", Lines: []string{"1号线"}, District: "黄浦区", Year: 1995},
		{ID: 2, Name: "孤岛二", Lines: []string{"2号线"}, District: "静安区", Year: 2000},
	})
	if err != nil {
		t.Fatalf("failed to build disconnected graph: %v", err)
	}
	return g
}

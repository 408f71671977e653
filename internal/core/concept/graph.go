package concept

// node describes a concept and its neighborhood in the relation graph.
type node struct {
	Name        string
	Aliases     []string
	Related     []string
	Subconcepts []string
	Level       string
}

// graph lists the core mathematical areas in declaration order. Related
// concepts that co-occur in one extraction raise each other's confidence.
var graph = []node{
	{
		Name:        "미분",
		Aliases:     []string{"도함수", "미분계수", "derivative", "differentiation"},
		Related:     []string{"함수", "극한", "연속성", "접선"},
		Subconcepts: []string{"합성함수의 미분", "음함수의 미분", "매개변수 미분"},
		Level:       "advanced",
	},
	{
		Name:        "적분",
		Aliases:     []string{"부정적분", "정적분", "integral", "integration"},
		Related:     []string{"미분", "면적", "부피", "곡선"},
		Subconcepts: []string{"부분적분", "치환적분", "삼각치환"},
		Level:       "advanced",
	},
	{
		Name:        "극한",
		Aliases:     []string{"limit", "lim"},
		Related:     []string{"연속성", "미분", "수렴", "발산"},
		Subconcepts: []string{"좌극한", "우극한", "무한극한"},
		Level:       "intermediate",
	},
	{
		Name:        "함수",
		Aliases:     []string{"function"},
		Related:     []string{"정의역", "치역", "대응관계"},
		Subconcepts: []string{"일대일함수", "전사함수", "합성함수"},
		Level:       "basic",
	},
	{
		Name:        "삼각함수",
		Aliases:     []string{"trigonometric function", "trigonometry"},
		Related:     []string{"각도", "단위원", "주기함수"},
		Subconcepts: []string{"사인함수", "코사인함수", "탄젠트함수"},
		Level:       "intermediate",
	},
	{
		Name:        "지수함수",
		Aliases:     []string{"exponential function"},
		Related:     []string{"로그함수", "자연로그", "지수법칙"},
		Subconcepts: []string{"자연지수함수", "복리계산"},
		Level:       "intermediate",
	},
	{
		Name:        "로그함수",
		Aliases:     []string{"logarithmic function", "log"},
		Related:     []string{"지수함수", "자연로그", "로그법칙"},
		Subconcepts: []string{"자연로그", "상용로그"},
		Level:       "intermediate",
	},
	{
		Name:        "수열",
		Aliases:     []string{"sequence", "series"},
		Related:     []string{"급수", "수렴", "발산", "등차수열", "등비수열"},
		Subconcepts: []string{"등차수열", "등비수열", "피보나치수열"},
		Level:       "intermediate",
	},
	{
		Name:        "급수",
		Aliases:     []string{"series", "infinite series"},
		Related:     []string{"수열", "수렴", "발산", "합"},
		Subconcepts: []string{"기하급수", "조화급수", "테일러급수"},
		Level:       "advanced",
	},
	{
		Name:        "확률",
		Aliases:     []string{"probability"},
		Related:     []string{"통계", "사건", "확률분포"},
		Subconcepts: []string{"조건부확률", "독립사건", "베이즈정리"},
		Level:       "intermediate",
	},
	{
		Name:        "통계",
		Aliases:     []string{"statistics"},
		Related:     []string{"확률", "평균", "분산", "표준편차"},
		Subconcepts: []string{"기술통계", "추론통계", "회귀분석"},
		Level:       "intermediate",
	},
	{
		Name:        "벡터",
		Aliases:     []string{"vector"},
		Related:     []string{"스칼라", "내적", "외적", "공간"},
		Subconcepts: []string{"단위벡터", "영벡터", "벡터공간"},
		Level:       "advanced",
	},
	{
		Name:        "행렬",
		Aliases:     []string{"matrix"},
		Related:     []string{"행렬식", "역행렬", "선형변환"},
		Subconcepts: []string{"정사각행렬", "대각행렬", "단위행렬"},
		Level:       "advanced",
	},
	{
		Name:        "기하",
		Aliases:     []string{"geometry"},
		Related:     []string{"도형", "면적", "부피", "공간"},
		Subconcepts: []string{"평면기하", "공간기하", "해석기하"},
		Level:       "basic",
	},
	{
		Name:        "방정식",
		Aliases:     []string{"equation"},
		Related:     []string{"부등식", "해", "근", "이차방정식"},
		Subconcepts: []string{"일차방정식", "이차방정식", "연립방정식"},
		Level:       "basic",
	},
	{
		Name:        "부등식",
		Aliases:     []string{"inequality"},
		Related:     []string{"방정식", "해", "구간"},
		Subconcepts: []string{"일차부등식", "이차부등식", "절댓값부등식"},
		Level:       "basic",
	},
}

// graphIndex allows O(1) lookups by concept name.
var graphIndex = func() map[string]node {
	m := make(map[string]node, len(graph))
	for _, n := range graph {
		m[n.Name] = n
	}
	return m
}()

// Related returns the related concepts for a concept name, or nil when the
// concept is not part of the graph.
func Related(name string) []string {
	if n, ok := graphIndex[name]; ok {
		return n.Related
	}
	return nil
}

// Subconcepts returns the subconcepts for a concept name.
func Subconcepts(name string) []string {
	if n, ok := graphIndex[name]; ok {
		return n.Subconcepts
	}
	return nil
}

// Level returns the level tag for a concept, "unknown" when absent.
func Level(name string) string {
	if n, ok := graphIndex[name]; ok && n.Level != "" {
		return n.Level
	}
	return "unknown"
}

package curriculum

// Unit is a leaf of the curriculum tree: a named unit with its ordered
// sub-concepts.
type Unit struct {
	Name        string
	SubConcepts []string
}

// Subject groups units under a grade.
type Subject struct {
	Name  string
	Units []Unit
}

// Grade is the top level of the 2022 revised Korean math curriculum.
type Grade struct {
	Name     string
	Subjects []Subject
}

// unit builds a middle-school unit, whose only sub-concept is its own name.
func unit(name string) Unit {
	return Unit{Name: name, SubConcepts: []string{name}}
}

// table holds the full curriculum as ordered slices so traversal order is
// deterministic. Classification ties keep the first-declared unit.
var table = []Grade{
	{
		Name: "중학교 1학년",
		Subjects: []Subject{
			{Name: "수와 연산", Units: []Unit{
				unit("정수와 유리수"), unit("정수와 유리수의 계산"), unit("문자와 식"), unit("일차방정식"),
			}},
			{Name: "기하", Units: []Unit{
				unit("기본도형"), unit("평면도형"), unit("입체도형"),
			}},
			{Name: "확률과 통계", Units: []Unit{
				unit("자료의 정리와 해석"),
			}},
		},
	},
	{
		Name: "중학교 2학년",
		Subjects: []Subject{
			{Name: "수와 연산", Units: []Unit{
				unit("유리수와 순환소수"), unit("식의 계산"), unit("연립방정식"),
			}},
			{Name: "기하", Units: []Unit{
				unit("도형의 성질"), unit("도형의 닮음"), unit("피타고라스 정리"),
			}},
			{Name: "확률과 통계", Units: []Unit{
				unit("확률"),
			}},
		},
	},
	{
		Name: "중학교 3학년",
		Subjects: []Subject{
			{Name: "수와 연산", Units: []Unit{
				unit("제곱근과 실수"), unit("근호를 포함한 식의 계산"), unit("이차방정식"),
			}},
			{Name: "기하", Units: []Unit{
				unit("원의 성질"), unit("삼각비"), unit("원과 직선"),
			}},
			{Name: "확률과 통계", Units: []Unit{
				unit("통계"),
			}},
		},
	},
	{
		Name: "고등학교 1학년",
		Subjects: []Subject{
			{Name: "수학", Units: []Unit{
				{Name: "수와 연산", SubConcepts: []string{"지수와 로그", "삼각함수"}},
				{Name: "기하", SubConcepts: []string{"평면좌표", "직선의 방정식", "원의 방정식"}},
				{Name: "확률과 통계", SubConcepts: []string{"경우의 수", "확률"}},
			}},
			{Name: "수학 I", Units: []Unit{
				{Name: "지수함수와 로그함수", SubConcepts: []string{"지수", "로그", "지수함수", "로그함수"}},
				{Name: "삼각함수", SubConcepts: []string{"삼각함수", "삼각함수의 그래프", "사인법칙", "코사인법칙"}},
				{Name: "수열", SubConcepts: []string{"등차수열", "등비수열", "수열의 합"}},
			}},
			{Name: "수학 II", Units: []Unit{
				{Name: "함수의 극한과 연속", SubConcepts: []string{"함수의 극한", "함수의 연속"}},
				{Name: "미분법", SubConcepts: []string{"미분계수", "도함수", "도함수의 활용"}},
				{Name: "적분법", SubConcepts: []string{"부정적분", "정적분", "정적분의 활용"}},
			}},
		},
	},
	{
		Name: "고등학교 2학년",
		Subjects: []Subject{
			{Name: "확률과 통계", Units: []Unit{
				{Name: "확률", SubConcepts: []string{"확률의 뜻과 활용", "조건부확률"}},
				{Name: "통계", SubConcepts: []string{"확률분포", "통계적 추정"}},
			}},
			{Name: "기하", Units: []Unit{
				{Name: "이차곡선", SubConcepts: []string{"포물선", "타원", "쌍곡선"}},
				{Name: "평면벡터", SubConcepts: []string{"벡터", "벡터의 연산", "평면벡터의 성분과 내적"}},
				{Name: "공간도형과 공간좌표", SubConcepts: []string{"공간도형", "공간좌표"}},
			}},
		},
	},
	{
		Name: "고등학교 3학년",
		Subjects: []Subject{
			{Name: "미적분", Units: []Unit{
				{Name: "수열의 극한", SubConcepts: []string{"수열의 극한", "급수"}},
				{Name: "미분법", SubConcepts: []string{"여러 가지 함수의 미분", "도함수의 활용"}},
				{Name: "적분법", SubConcepts: []string{"여러 가지 적분법", "정적분의 활용"}},
			}},
			{Name: "확률과 통계", Units: []Unit{
				{Name: "확률분포", SubConcepts: []string{"이산확률분포", "연속확률분포"}},
				{Name: "통계적 추정", SubConcepts: []string{"모집단과 표본", "통계적 추정"}},
			}},
		},
	},
}

// unitKeywords widens matching for units whose names alone are too narrow.
// Units without an entry fall back to their sub-concept list.
var unitKeywords = map[string][]string{
	"원의 성질":      {"원", "원주각", "중심각", "호", "현", "접선", "반지름", "지름", "원주", "넓이"},
	"삼각비":        {"삼각비", "사인", "코사인", "탄젠트", "sin", "cos", "tan"},
	"도형의 성질":     {"삼각형", "사각형", "다각형", "이등변", "정삼각형", "정사각형"},
	"도형의 닮음":     {"닮음", "닮음비", "대응변", "대응각"},
	"피타고라스 정리":   {"피타고라스", "직각삼각형", "빗변"},
	"이차방정식":      {"이차방정식", "근", "판별식", "인수분해"},
	"지수함수와 로그함수": {"지수", "로그", "지수함수", "로그함수"},
	"삼각함수":       {"삼각함수", "사인", "코사인", "탄젠트", "사인법칙", "코사인법칙"},
	"미분법":        {"미분", "도함수", "접선", "극값", "증감"},
	"적분법":        {"적분", "부정적분", "정적분", "넓이", "부피"},
}

// keywordsFor returns the keyword list for a unit, falling back to its
// sub-concepts when no dedicated entry exists.
func keywordsFor(u Unit) []string {
	if kw, ok := unitKeywords[u.Name]; ok {
		return kw
	}
	return u.SubConcepts
}

// difficultyByGrade maps a grade to its nominal difficulty label.
var difficultyByGrade = map[string]string{
	"중학교 1학년":  "Basic",
	"중학교 2학년":  "Basic-Intermediate",
	"중학교 3학년":  "Intermediate",
	"고등학교 1학년": "Intermediate",
	"고등학교 2학년": "Intermediate-Advanced",
	"고등학교 3학년": "Advanced",
}

// DifficultyLevel returns the difficulty label for a grade. Unknown grades,
// including the empty string, fall back to "Intermediate".
func DifficultyLevel(grade string) string {
	if level, ok := difficultyByGrade[grade]; ok {
		return level
	}
	return "Intermediate"
}

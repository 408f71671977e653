package concept

// rule maps a literal pattern to a concept with a base weight.
type rule struct {
	Pattern string
	Concept string
	Weight  float64
}

// latexRules is searched by literal substring against the LaTeX field.
// Declaration order is the traversal order.
var latexRules = []rule{
	// differentiation
	{`\frac{d}{dx}`, "미분", 1.0},
	{`\frac{d}{dy}`, "미분", 1.0},
	{`\frac{d}{dt}`, "미분", 1.0},
	{`\frac{d}{dz}`, "미분", 1.0},
	{`\frac{d^2}{dx^2}`, "미분", 1.0},
	{`\frac{d^2}{dy^2}`, "미분", 1.0},
	{`\frac{d^n}{dx^n}`, "미분", 1.0},
	{`f'(x)`, "미분", 0.9},
	{`f''(x)`, "미분", 0.9},
	{`f^{(n)}(x)`, "미분", 0.9},

	// integration
	{`\int`, "적분", 1.0},
	{`\int_a^b`, "적분", 1.0},
	{`\int_0^\infty`, "적분", 1.0},
	{`\int_{-\infty}^{\infty}`, "적분", 1.0},
	{`\iint`, "적분", 1.0},
	{`\iiint`, "적분", 1.0},
	{`\oint`, "적분", 1.0},

	// limits
	{`\lim`, "극한", 1.0},
	{`\lim_{x \to a}`, "극한", 1.0},
	{`\lim_{x \to \infty}`, "극한", 1.0},
	{`\lim_{x \to 0}`, "극한", 1.0},
	{`\lim_{n \to \infty}`, "극한", 1.0},

	// trigonometry
	{`\sin`, "삼각함수", 0.8},
	{`\cos`, "삼각함수", 0.8},
	{`\tan`, "삼각함수", 0.8},
	{`\csc`, "삼각함수", 0.8},
	{`\sec`, "삼각함수", 0.8},
	{`\cot`, "삼각함수", 0.8},
	{`\arcsin`, "삼각함수", 0.8},
	{`\arccos`, "삼각함수", 0.8},
	{`\arctan`, "삼각함수", 0.8},

	// logarithms
	{`\log`, "로그함수", 0.8},
	{`\ln`, "로그함수", 0.8},
	{`\log_{10}`, "로그함수", 0.8},
	{`\log_2`, "로그함수", 0.8},

	// exponentials
	{`e^x`, "지수함수", 0.8},
	{`e^{`, "지수함수", 0.8},
	{`a^x`, "지수함수", 0.8},
	{`\exp`, "지수함수", 0.8},

	// series
	{`\sum`, "급수", 1.0},
	{`\sum_{n=1}^{\infty}`, "급수", 1.0},
	{`\sum_{k=1}^{n}`, "급수", 1.0},
	{`\prod`, "급수", 0.8},

	// vectors
	{`\vec`, "벡터", 1.0},
	{`\overrightarrow`, "벡터", 1.0},
	{`\mathbf`, "벡터", 0.7},

	// matrices
	{`\begin{pmatrix}`, "행렬", 1.0},
	{`\begin{bmatrix}`, "행렬", 1.0},
	{`\begin{vmatrix}`, "행렬", 1.0},
	{`\begin{matrix}`, "행렬", 1.0},

	// functions
	{`f(x)`, "함수", 0.7},
	{`g(x)`, "함수", 0.7},
	{`h(x)`, "함수", 0.7},
	{`y =`, "함수", 0.6},

	{`\frac`, "분수", 0.5},
	{`\sqrt`, "제곱근", 0.5},
	{`\sqrt[n]`, "제곱근", 0.5},
}

// latexRuleIndex resolves a bare \command found by the generic scan.
var latexRuleIndex = func() map[string]rule {
	m := make(map[string]rule, len(latexRules))
	for _, r := range latexRules {
		if _, ok := m[r.Pattern]; !ok {
			m[r.Pattern] = r
		}
	}
	return m
}()

// keywordRules is the bilingual KO/EN keyword table searched against the
// natural-language text.
var keywordRules = []rule{
	// Korean keywords
	{"미분", "미분", 1.0},
	{"도함수", "미분", 0.9},
	{"미분계수", "미분", 0.8},
	{"적분", "적분", 1.0},
	{"부정적분", "적분", 0.9},
	{"정적분", "적분", 0.9},
	{"극한", "극한", 1.0},
	{"함수", "함수", 0.7},
	{"삼각함수", "삼각함수", 1.0},
	{"사인", "삼각함수", 0.8},
	{"코사인", "삼각함수", 0.8},
	{"탄젠트", "삼각함수", 0.8},
	{"지수함수", "지수함수", 1.0},
	{"로그함수", "로그함수", 1.0},
	{"로그", "로그함수", 0.8},
	{"수열", "수열", 1.0},
	{"급수", "급수", 1.0},
	{"확률", "확률", 1.0},
	{"통계", "통계", 1.0},
	{"벡터", "벡터", 1.0},
	{"행렬", "행렬", 1.0},
	{"기하", "기하", 1.0},
	{"방정식", "방정식", 1.0},
	{"부등식", "부등식", 1.0},
	{"이차함수", "함수", 0.9},
	{"유리함수", "함수", 0.9},
	{"무리함수", "함수", 0.9},
	{"합성함수", "함수", 0.8},
	{"역함수", "함수", 0.8},
	{"연속", "극한", 0.7},
	{"수렴", "급수", 0.8},
	{"발산", "급수", 0.8},
	{"접선", "미분", 0.7},
	{"면적", "적분", 0.7},
	{"부피", "적분", 0.7},
	{"곡선", "적분", 0.6},
	{"각도", "삼각함수", 0.6},
	{"단위원", "삼각함수", 0.7},
	{"주기", "삼각함수", 0.6},
	{"자연로그", "로그함수", 0.8},
	{"상용로그", "로그함수", 0.8},
	{"등차수열", "수열", 0.9},
	{"등비수열", "수열", 0.9},
	{"기하급수", "급수", 0.9},
	{"조화급수", "급수", 0.9},
	{"조건부확률", "확률", 0.9},
	{"독립사건", "확률", 0.8},
	{"평균", "통계", 0.7},
	{"분산", "통계", 0.7},
	{"표준편차", "통계", 0.7},
	{"내적", "벡터", 0.8},
	{"외적", "벡터", 0.8},
	{"행렬식", "행렬", 0.8},
	{"역행렬", "행렬", 0.8},
	{"도형", "기하", 0.7},
	{"해", "방정식", 0.7},
	{"근", "방정식", 0.7},
	{"이차방정식", "방정식", 0.9},
	{"일차방정식", "방정식", 0.9},
	{"연립방정식", "방정식", 0.9},
	{"일차부등식", "부등식", 0.9},
	{"이차부등식", "부등식", 0.9},
	{"절댓값", "부등식", 0.6},

	// English keywords
	{"derivative", "미분", 1.0},
	{"differentiation", "미분", 0.9},
	{"integral", "적분", 1.0},
	{"integration", "적분", 0.9},
	{"limit", "극한", 1.0},
	{"function", "함수", 0.7},
	{"trigonometric", "삼각함수", 1.0},
	{"trigonometry", "삼각함수", 0.9},
	{"sine", "삼각함수", 0.8},
	{"cosine", "삼각함수", 0.8},
	{"exponential", "지수함수", 1.0},
	{"logarithmic", "로그함수", 1.0},
	{"logarithm", "로그함수", 0.8},
	{"sequence", "수열", 1.0},
	{"series", "급수", 1.0},
	{"probability", "확률", 1.0},
	{"statistics", "통계", 1.0},
	{"vector", "벡터", 1.0},
	{"matrix", "행렬", 1.0},
	{"geometry", "기하", 1.0},
	{"equation", "방정식", 1.0},
	{"inequality", "부등식", 1.0},
	{"quadratic", "방정식", 0.8},
	{"linear", "방정식", 0.7},
	{"continuous", "극한", 0.7},
	{"convergence", "급수", 0.8},
	{"divergence", "급수", 0.8},
	{"tangent", "미분", 0.7},
	{"area", "적분", 0.7},
	{"volume", "적분", 0.7},
	{"curve", "적분", 0.6},
	{"angle", "삼각함수", 0.6},
	{"unit circle", "삼각함수", 0.7},
	{"periodic", "삼각함수", 0.6},
	{"natural log", "로그함수", 0.8},
	{"common log", "로그함수", 0.8},
	{"arithmetic sequence", "수열", 0.9},
	{"geometric sequence", "수열", 0.9},
	{"geometric series", "급수", 0.9},
	{"harmonic series", "급수", 0.9},
	{"conditional probability", "확률", 0.9},
	{"independent events", "확률", 0.8},
	{"mean", "통계", 0.7},
	{"variance", "통계", 0.7},
	{"standard deviation", "통계", 0.7},
	{"dot product", "벡터", 0.8},
	{"cross product", "벡터", 0.8},
	{"determinant", "행렬", 0.8},
	{"inverse matrix", "행렬", 0.8},
	{"shape", "기하", 0.7},
	{"solution", "방정식", 0.7},
	{"root", "방정식", 0.7},
	{"quadratic equation", "방정식", 0.9},
	{"linear equation", "방정식", 0.9},
	{"system of equations", "방정식", 0.9},
	{"linear inequality", "부등식", 0.9},
	{"quadratic inequality", "부등식", 0.9},
	{"absolute value", "부등식", 0.6},
}

// contextRules matches imperative/contextual phrases over latex+text.
var contextRules = []rule{
	{"미분하시오", "미분", 0.9},
	{"differentiate", "미분", 0.9},
	{"적분하시오", "적분", 0.9},
	{"integrate", "적분", 0.9},
	{"극한값", "극한", 0.9},
	{"limit", "극한", 0.9},
	{"함수의", "함수", 0.8},
	{"function", "함수", 0.8},
	{"삼각함수의", "삼각함수", 0.9},
	{"trigonometric", "삼각함수", 0.9},
	{"로그함수의", "로그함수", 0.9},
	{"logarithmic", "로그함수", 0.9},
	{"지수함수의", "지수함수", 0.9},
	{"exponential", "지수함수", 0.9},
	{"수열의", "수열", 0.9},
	{"sequence", "수열", 0.9},
	{"급수의", "급수", 0.9},
	{"series", "급수", 0.9},
	{"확률의", "확률", 0.9},
	{"probability", "확률", 0.9},
	{"통계의", "통계", 0.9},
	{"statistics", "통계", 0.9},
	{"벡터의", "벡터", 0.9},
	{"vector", "벡터", 0.9},
	{"행렬의", "행렬", 0.9},
	{"matrix", "행렬", 0.9},
	{"방정식의", "방정식", 0.9},
	{"equation", "방정식", 0.9},
	{"부등식의", "부등식", 0.9},
	{"inequality", "부등식", 0.9},
}

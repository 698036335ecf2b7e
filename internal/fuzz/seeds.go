package fuzztests

import (
	"io/fs"
	"path/filepath"
	"testing"

	"cppfqn/internal/fixture"
	"cppfqn/internal/source"
)

const (
	maxSeedBytes = 4 << 10 // 4 KiB: длиннее деклараторов не бывает
)

var builtinSeeds = []string{
	"",
	"one::two::three()",
	"int one_3hello0::tconstwo<mytemplate>::three(const four &) volatile",
	"one::two::operator  []()",
	"operator",
	"operator_x",
	"a<b<c>>::d<e>::f()",
	"f(X, Y, Z) const volatile",
	"three(",
	"three)",
	"Bar>::f()",
	"ns::<T>::f()",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add(s)
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	// проходим по дереву testdata: списки сигнатур и golden-фикстуры
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".sig":
			l, err := source.LoadListing(path)
			if err != nil {
				return nil
			}
			for _, line := range l.Lines {
				f.Add(clampSeed(line.Text))
			}
		case ".json", ".msgpack":
			recs, err := fixture.Load(path)
			if err != nil {
				return nil
			}
			for _, r := range recs {
				f.Add(clampSeed(r.Source))
			}
		}
		return nil
	})
}

func clampSeed(src string) string {
	if len(src) <= maxSeedBytes {
		return src
	}
	return src[:maxSeedBytes]
}

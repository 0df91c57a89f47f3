package nvimage

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// LayoutJson populates a json object with the computed layout, one entry per
// laid-out level.
func (i *Image) LayoutJson(json jwriter.ObjectState) {
	json.Name("Dim").String(i.Dim.String())
	json.Name("Format").Int(int(i.Format))
	json.Name("SampleLayout").String(i.SampleLayout.String())

	extentObj := json.Name("ExtentPx").Object()
	extentObj.Name("Width").Int(int(i.ExtentPx.Width))
	extentObj.Name("Height").Int(int(i.ExtentPx.Height))
	extentObj.Name("Depth").Int(int(i.ExtentPx.Depth))
	extentObj.Name("ArrayLen").Int(int(i.ExtentPx.ArrayLen))
	extentObj.End()

	levelArray := json.Name("Levels").Array()
	for level := uint32(0); level < i.NumLevels; level++ {
		lvl := &i.Levels[level]

		lvlObj := levelArray.Object()
		lvlObj.Name("OffsetB").Int(int(lvl.OffsetB))
		lvlObj.Name("RowStrideB").Int(int(lvl.RowStrideB))
		lvlObj.Name("SizeB").Int(int(i.LevelSizeB(level)))
		lvlObj.Name("IsTiled").Bool(lvl.Tiling.IsTiled)
		if lvl.Tiling.IsTiled {
			lvlObj.Name("XLog2").Int(int(lvl.Tiling.XLog2))
			lvlObj.Name("YLog2").Int(int(lvl.Tiling.YLog2))
			lvlObj.Name("ZLog2").Int(int(lvl.Tiling.ZLog2))
		}
		lvlObj.End()
	}
	levelArray.End()

	if i.MipTailFirstLod > 0 && i.MipTailFirstLod < i.NumLevels {
		tailObj := json.Name("MipTail").Object()
		tailObj.Name("FirstLod").Int(int(i.MipTailFirstLod))
		tailObj.Name("OffsetB").Int(int(i.MipTailOffsetB()))
		tailObj.Name("SizeB").Int(int(i.MipTailSizeB()))
		tailObj.End()
	}

	json.Name("ArrayStrideB").Int(int(i.ArrayStrideB))
	json.Name("AlignB").Int(int(i.AlignB))
	json.Name("SizeB").Int(int(i.SizeB))
	json.Name("TileMode").Int(int(i.TileMode))
	json.Name("PteKind").Int(int(i.PteKind))
}

// PrintLayout writes the computed layout to the provided writer as a single
// json object.
func (i *Image) PrintLayout(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	i.LayoutJson(obj)
}

// BuildLayoutString builds a json string describing the computed layout,
// suitable for diagnostics.
func (i *Image) BuildLayoutString() string {
	writer := jwriter.NewWriter()
	i.PrintLayout(&writer)

	return string(writer.Bytes())
}

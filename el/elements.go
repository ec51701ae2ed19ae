// This file lists one constructor per tag of the catalogue.
package el

import "github.com/vango-dev/htmldoom/pkg/element"

func A(args ...any) element.CompositeTag {
	return composite("a", args)
}
func Abbr(args ...any) element.CompositeTag {
	return composite("abbr", args)
}
func Address(args ...any) element.CompositeTag {
	return composite("address", args)
}
func Animate(args ...any) element.CompositeTag {
	return composite("animate", args)
}
func AnimateMotion(args ...any) element.CompositeTag {
	return composite("animateMotion", args)
}
func AnimateTransform(args ...any) element.CompositeTag {
	return composite("animateTransform", args)
}
func Area(args ...any) element.LeafTag {
	return leaf("area", args)
}
func Article(args ...any) element.CompositeTag {
	return composite("article", args)
}
func Aside(args ...any) element.CompositeTag {
	return composite("aside", args)
}
func Audio(args ...any) element.CompositeTag {
	return composite("audio", args)
}
func B(args ...any) element.CompositeTag {
	return composite("b", args)
}
func Base(args ...any) element.LeafTag {
	return leaf("base", args)
}
func Bdi(args ...any) element.CompositeTag {
	return composite("bdi", args)
}
func Bdo(args ...any) element.CompositeTag {
	return composite("bdo", args)
}
func Blockquote(args ...any) element.CompositeTag {
	return composite("blockquote", args)
}
func Body(args ...any) element.CompositeTag {
	return composite("body", args)
}
func Br(args ...any) element.LeafTag {
	return leaf("br", args)
}
func Button(args ...any) element.CompositeTag {
	return composite("button", args)
}
func Canvas(args ...any) element.CompositeTag {
	return composite("canvas", args)
}
func Caption(args ...any) element.CompositeTag {
	return composite("caption", args)
}
func Center(args ...any) element.CompositeTag {
	return composite("center", args)
}
func Circle(args ...any) element.CompositeTag {
	return composite("circle", args)
}
func CirclePath(args ...any) element.CompositeTag {
	return composite("circlePath", args)
}
func Cite(args ...any) element.CompositeTag {
	return composite("cite", args)
}
func Code(args ...any) element.CompositeTag {
	return composite("code", args)
}
func Col(args ...any) element.LeafTag {
	return leaf("col", args)
}
func Colgroup(args ...any) element.CompositeTag {
	return composite("colgroup", args)
}
func ColorProfile(args ...any) element.CompositeTag {
	return composite("profile", args)
}
func Data(args ...any) element.CompositeTag {
	return composite("data", args)
}
func Datalist(args ...any) element.CompositeTag {
	return composite("datalist", args)
}
func Dd(args ...any) element.CompositeTag {
	return composite("dd", args)
}
func Defs(args ...any) element.CompositeTag {
	return composite("defs", args)
}
func Del(args ...any) element.CompositeTag {
	return composite("del", args)
}
func Desc(args ...any) element.CompositeTag {
	return composite("desc", args)
}
func Details(args ...any) element.CompositeTag {
	return composite("details", args)
}
func Dfn(args ...any) element.CompositeTag {
	return composite("dfn", args)
}
func Dialog(args ...any) element.CompositeTag {
	return composite("dialog", args)
}
func Discard(args ...any) element.CompositeTag {
	return composite("discard", args)
}
func Div(args ...any) element.CompositeTag {
	return composite("div", args)
}
func Dl(args ...any) element.CompositeTag {
	return composite("dl", args)
}
func Dt(args ...any) element.CompositeTag {
	return composite("dt", args)
}
func Ellipse(args ...any) element.CompositeTag {
	return composite("ellipse", args)
}
func Em(args ...any) element.CompositeTag {
	return composite("em", args)
}
func Embed(args ...any) element.LeafTag {
	return leaf("embed", args)
}
func FeBlend(args ...any) element.CompositeTag {
	return composite("feBlend", args)
}
func FeColorMatrix(args ...any) element.CompositeTag {
	return composite("feColorMatrix", args)
}
func FeComponentTransfer(args ...any) element.CompositeTag {
	return composite("feComponentTransfer", args)
}
func FeComposite(args ...any) element.CompositeTag {
	return composite("feComposite", args)
}
func FeConvolveMatrix(args ...any) element.CompositeTag {
	return composite("feConvolveMatrix", args)
}
func FeDiffuseLighting(args ...any) element.CompositeTag {
	return composite("feDiffuseLighting", args)
}
func FeDisplacementMap(args ...any) element.CompositeTag {
	return composite("feDisplacementMap", args)
}
func FeDistantLight(args ...any) element.CompositeTag {
	return composite("feDistantLight", args)
}
func FeDropShadow(args ...any) element.CompositeTag {
	return composite("feDropShadow", args)
}
func FeFlood(args ...any) element.CompositeTag {
	return composite("feFlood", args)
}
func FeFuncA(args ...any) element.CompositeTag {
	return composite("feFuncA", args)
}
func FeFuncB(args ...any) element.CompositeTag {
	return composite("feFuncB", args)
}
func FeFuncG(args ...any) element.CompositeTag {
	return composite("feFuncG", args)
}
func FeFuncR(args ...any) element.CompositeTag {
	return composite("feFuncR", args)
}
func FeGaussianBlur(args ...any) element.CompositeTag {
	return composite("feGaussianBlur", args)
}
func FeImage(args ...any) element.CompositeTag {
	return composite("feImage", args)
}
func FeMerge(args ...any) element.CompositeTag {
	return composite("feMerge", args)
}
func FeMergeNode(args ...any) element.CompositeTag {
	return composite("feMergeNode", args)
}
func FeMorphology(args ...any) element.CompositeTag {
	return composite("feMorphology", args)
}
func FeOffset(args ...any) element.CompositeTag {
	return composite("feOffset", args)
}
func FePointLight(args ...any) element.CompositeTag {
	return composite("fePointLight", args)
}
func FeSpecularLighting(args ...any) element.CompositeTag {
	return composite("feSpecularLighting", args)
}
func FeSpotLight(args ...any) element.CompositeTag {
	return composite("feSpotLight", args)
}
func FeTile(args ...any) element.CompositeTag {
	return composite("feTile", args)
}
func FeTurbulence(args ...any) element.CompositeTag {
	return composite("feTurbulence", args)
}
func Fieldset(args ...any) element.CompositeTag {
	return composite("fieldset", args)
}
func Figcaption(args ...any) element.CompositeTag {
	return composite("figcaption", args)
}
func Figure(args ...any) element.CompositeTag {
	return composite("figure", args)
}
func Filter(args ...any) element.CompositeTag {
	return composite("filter", args)
}
func Footer(args ...any) element.CompositeTag {
	return composite("footer", args)
}
func ForeignObject(args ...any) element.CompositeTag {
	return composite("foreignObject", args)
}
func Form(args ...any) element.CompositeTag {
	return composite("form", args)
}
func G(args ...any) element.CompositeTag {
	return composite("g", args)
}
func H1(args ...any) element.CompositeTag {
	return composite("h1", args)
}
func H2(args ...any) element.CompositeTag {
	return composite("h2", args)
}
func H3(args ...any) element.CompositeTag {
	return composite("h3", args)
}
func H4(args ...any) element.CompositeTag {
	return composite("h4", args)
}
func H5(args ...any) element.CompositeTag {
	return composite("h5", args)
}
func H6(args ...any) element.CompositeTag {
	return composite("h6", args)
}
func Hatch(args ...any) element.CompositeTag {
	return composite("hatch", args)
}
func Hatchpath(args ...any) element.CompositeTag {
	return composite("hatchpath", args)
}
func Head(args ...any) element.CompositeTag {
	return composite("head", args)
}
func Header(args ...any) element.CompositeTag {
	return composite("header", args)
}
func Hr(args ...any) element.LeafTag {
	return leaf("hr", args)
}
func Html(args ...any) element.CompositeTag {
	return composite("html", args)
}
func I(args ...any) element.CompositeTag {
	return composite("i", args)
}
func Iframe(args ...any) element.CompositeTag {
	return composite("iframe", args)
}
func Image(args ...any) element.CompositeTag {
	return composite("image", args)
}
func Img(args ...any) element.LeafTag {
	return leaf("img", args)
}
func Input(args ...any) element.LeafTag {
	return leaf("input", args)
}
func Ins(args ...any) element.CompositeTag {
	return composite("ins", args)
}
func Kbd(args ...any) element.CompositeTag {
	return composite("kbd", args)
}
func Label(args ...any) element.CompositeTag {
	return composite("label", args)
}
func Legend(args ...any) element.CompositeTag {
	return composite("legend", args)
}
func Li(args ...any) element.CompositeTag {
	return composite("li", args)
}
func Line(args ...any) element.CompositeTag {
	return composite("line", args)
}
func LinearGradient(args ...any) element.CompositeTag {
	return composite("linearGradient", args)
}
func Link(args ...any) element.LeafTag {
	return leaf("link", args)
}
func Main(args ...any) element.CompositeTag {
	return composite("main", args)
}
func Map(args ...any) element.CompositeTag {
	return composite("map", args)
}
func Mark(args ...any) element.CompositeTag {
	return composite("mark", args)
}
func Marker(args ...any) element.CompositeTag {
	return composite("marker", args)
}
func Mask(args ...any) element.CompositeTag {
	return composite("mask", args)
}
func Meta(args ...any) element.LeafTag {
	return leaf("meta", args)
}
func Metadata(args ...any) element.CompositeTag {
	return composite("metadata", args)
}
func Meter(args ...any) element.CompositeTag {
	return composite("meter", args)
}
func Mpath(args ...any) element.CompositeTag {
	return composite("mpath", args)
}
func Nav(args ...any) element.CompositeTag {
	return composite("nav", args)
}
func Nobr(args ...any) element.CompositeTag {
	return composite("nobr", args)
}
func Noscript(args ...any) element.CompositeTag {
	return composite("noscript", args)
}
func Object(args ...any) element.CompositeTag {
	return composite("object", args)
}
func Ol(args ...any) element.CompositeTag {
	return composite("ol", args)
}
func Optgroup(args ...any) element.CompositeTag {
	return composite("optgroup", args)
}
func Option(args ...any) element.CompositeTag {
	return composite("option", args)
}
func Output(args ...any) element.CompositeTag {
	return composite("output", args)
}
func P(args ...any) element.CompositeTag {
	return composite("p", args)
}
func Param(args ...any) element.LeafTag {
	return leaf("param", args)
}
func Path(args ...any) element.CompositeTag {
	return composite("path", args)
}
func Pattern(args ...any) element.CompositeTag {
	return composite("pattern", args)
}
func Picture(args ...any) element.CompositeTag {
	return composite("picture", args)
}
func Polygon(args ...any) element.CompositeTag {
	return composite("polygon", args)
}
func Polyline(args ...any) element.CompositeTag {
	return composite("polyline", args)
}
func Pre(args ...any) element.CompositeTag {
	return composite("pre", args)
}
func Progress(args ...any) element.CompositeTag {
	return composite("progress", args)
}
func Q(args ...any) element.CompositeTag {
	return composite("q", args)
}
func RadialGradient(args ...any) element.CompositeTag {
	return composite("radialGradient", args)
}
func Rect(args ...any) element.CompositeTag {
	return composite("rect", args)
}
func Rp(args ...any) element.CompositeTag {
	return composite("rp", args)
}
func Rt(args ...any) element.CompositeTag {
	return composite("rt", args)
}
func Ruby(args ...any) element.CompositeTag {
	return composite("ruby", args)
}
func S(args ...any) element.CompositeTag {
	return composite("s", args)
}
func Samp(args ...any) element.CompositeTag {
	return composite("samp", args)
}
func Script(args ...any) element.SingleChildTag {
	return raw("script", args)
}
func Section(args ...any) element.CompositeTag {
	return composite("section", args)
}
func Select(args ...any) element.CompositeTag {
	return composite("select", args)
}
func Set(args ...any) element.CompositeTag {
	return composite("set", args)
}
func Small(args ...any) element.CompositeTag {
	return composite("small", args)
}
func Solidcolor(args ...any) element.CompositeTag {
	return composite("solidcolor", args)
}
func Source(args ...any) element.LeafTag {
	return leaf("source", args)
}
func Span(args ...any) element.CompositeTag {
	return composite("span", args)
}
func Stop(args ...any) element.CompositeTag {
	return composite("stop", args)
}
func Strong(args ...any) element.CompositeTag {
	return composite("strong", args)
}
func Style(args ...any) element.SingleChildTag {
	return raw("style", args)
}
func Sub(args ...any) element.CompositeTag {
	return composite("sub", args)
}
func Summary(args ...any) element.CompositeTag {
	return composite("summary", args)
}
func Sup(args ...any) element.CompositeTag {
	return composite("sup", args)
}
func Svg(args ...any) element.CompositeTag {
	return composite("svg", args)
}
func Switch(args ...any) element.CompositeTag {
	return composite("switch", args)
}
func Symbol(args ...any) element.CompositeTag {
	return composite("symbol", args)
}
func Table(args ...any) element.CompositeTag {
	return composite("table", args)
}
func Tbody(args ...any) element.CompositeTag {
	return composite("tbody", args)
}
func Td(args ...any) element.CompositeTag {
	return composite("td", args)
}
func Template(args ...any) element.CompositeTag {
	return composite("template", args)
}
func Text(args ...any) element.CompositeTag {
	return composite("text", args)
}
func Textarea(args ...any) element.SingleChildTag {
	return single("textarea", args)
}
func TextPath(args ...any) element.CompositeTag {
	return composite("textPath", args)
}
func Tfoot(args ...any) element.CompositeTag {
	return composite("tfoot", args)
}
func Th(args ...any) element.CompositeTag {
	return composite("th", args)
}
func Thead(args ...any) element.CompositeTag {
	return composite("thead", args)
}
func Time(args ...any) element.CompositeTag {
	return composite("time", args)
}
func Title(args ...any) element.SingleChildTag {
	return single("title", args)
}
func Tr(args ...any) element.CompositeTag {
	return composite("tr", args)
}
func Track(args ...any) element.LeafTag {
	return leaf("track", args)
}
func Tspan(args ...any) element.CompositeTag {
	return composite("tspan", args)
}
func U(args ...any) element.CompositeTag {
	return composite("u", args)
}
func Ul(args ...any) element.CompositeTag {
	return composite("ul", args)
}
func Use(args ...any) element.CompositeTag {
	return composite("use", args)
}
func Var(args ...any) element.CompositeTag {
	return composite("var", args)
}
func Video(args ...any) element.CompositeTag {
	return composite("video", args)
}
func View(args ...any) element.CompositeTag {
	return composite("view", args)
}
func Wbr(args ...any) element.LeafTag {
	return leaf("wbr", args)
}

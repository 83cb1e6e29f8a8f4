package typing

// Reference data, built once and never mutated.

func newSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// typingExtensions is the symbol surface of the typing_extensions module.
// See: https://pypi.org/project/typing-extensions/
var typingExtensions = newSet(
	"Annotated",
	"Any",
	"AsyncContextManager",
	"AsyncGenerator",
	"AsyncIterable",
	"AsyncIterator",
	"Awaitable",
	"ChainMap",
	"ClassVar",
	"Concatenate",
	"ContextManager",
	"Coroutine",
	"Counter",
	"DefaultDict",
	"Deque",
	"Final",
	"Literal",
	"LiteralString",
	"NamedTuple",
	"Never",
	"NewType",
	"NotRequired",
	"OrderedDict",
	"ParamSpec",
	"ParamSpecArgs",
	"ParamSpecKwargs",
	"Protocol",
	"Required",
	"Self",
	"TYPE_CHECKING",
	"Text",
	"Type",
	"TypeAlias",
	"TypeGuard",
	"TypeVar",
	"TypeVarTuple",
	"TypedDict",
	"Unpack",
	"assert_never",
	"assert_type",
	"clear_overloads",
	"final",
	"get_type_hints",
	"get_args",
	"get_origin",
	"get_overloads",
	"is_typeddict",
	"overload",
	"reveal_type",
	"runtime_checkable",
)

// importedSubscripts maps each subscriptable typing construct to the modules
// it can be imported from. Several constructs are re-exported from multiple
// modules. See: https://docs.python.org/3/library/typing.html
var importedSubscripts = buildImportedSubscripts()

func buildImportedSubscripts() map[string]map[string]struct{} {
	pairs := []struct{ name, module string }{
		// collections
		{"ChainMap", "collections"},
		{"Counter", "collections"},
		{"OrderedDict", "collections"},
		{"defaultdict", "collections"},
		{"deque", "collections"},
		// collections.abc
		{"AsyncGenerator", "collections.abc"},
		{"AsyncIterable", "collections.abc"},
		{"AsyncIterator", "collections.abc"},
		{"Awaitable", "collections.abc"},
		{"ByteString", "collections.abc"},
		{"Callable", "collections.abc"},
		{"Collection", "collections.abc"},
		{"Container", "collections.abc"},
		{"Coroutine", "collections.abc"},
		{"Generator", "collections.abc"},
		{"ItemsView", "collections.abc"},
		{"Iterable", "collections.abc"},
		{"Iterator", "collections.abc"},
		{"KeysView", "collections.abc"},
		{"Mapping", "collections.abc"},
		{"MappingView", "collections.abc"},
		{"MutableMapping", "collections.abc"},
		{"MutableSequence", "collections.abc"},
		{"MutableSet", "collections.abc"},
		{"Reversible", "collections.abc"},
		{"Sequence", "collections.abc"},
		{"Set", "collections.abc"},
		{"ValuesView", "collections.abc"},
		// contextlib
		{"AbstractAsyncContextManager", "contextlib"},
		{"AbstractContextManager", "contextlib"},
		// re
		{"Match", "re"},
		{"Pattern", "re"},
		// typing
		{"AbstractSet", "typing"},
		{"Annotated", "typing"},
		{"AsyncContextManager", "typing"},
		{"AsyncGenerator", "typing"},
		{"AsyncIterator", "typing"},
		{"Awaitable", "typing"},
		{"BinaryIO", "typing"},
		{"ByteString", "typing"},
		{"Callable", "typing"},
		{"ChainMap", "typing"},
		{"ClassVar", "typing"},
		{"Collection", "typing"},
		{"Concatenate", "typing"},
		{"Container", "typing"},
		{"ContextManager", "typing"},
		{"Coroutine", "typing"},
		{"Counter", "typing"},
		{"DefaultDict", "typing"},
		{"Deque", "typing"},
		{"Dict", "typing"},
		{"Final", "typing"},
		{"FrozenSet", "typing"},
		{"Generator", "typing"},
		{"Generic", "typing"},
		{"IO", "typing"},
		{"ItemsView", "typing"},
		{"Iterable", "typing"},
		{"Iterator", "typing"},
		{"KeysView", "typing"},
		{"List", "typing"},
		{"Mapping", "typing"},
		{"Match", "typing"},
		{"MutableMapping", "typing"},
		{"MutableSequence", "typing"},
		{"MutableSet", "typing"},
		{"Optional", "typing"},
		{"OrderedDict", "typing"},
		{"Pattern", "typing"},
		{"Reversible", "typing"},
		{"Sequence", "typing"},
		{"Set", "typing"},
		{"TextIO", "typing"},
		{"Tuple", "typing"},
		{"Type", "typing"},
		{"TypeGuard", "typing"},
		{"Union", "typing"},
		{"Unpack", "typing"},
		{"ValuesView", "typing"},
		// typing.io
		{"BinaryIO", "typing.io"},
		{"IO", "typing.io"},
		{"TextIO", "typing.io"},
		// typing.re
		{"Match", "typing.re"},
		{"Pattern", "typing.re"},
		// typing_extensions
		{"Annotated", "typing_extensions"},
		{"AsyncContextManager", "typing_extensions"},
		{"AsyncGenerator", "typing_extensions"},
		{"AsyncIterable", "typing_extensions"},
		{"AsyncIterator", "typing_extensions"},
		{"Awaitable", "typing_extensions"},
		{"ChainMap", "typing_extensions"},
		{"ClassVar", "typing_extensions"},
		{"Concatenate", "typing_extensions"},
		{"ContextManager", "typing_extensions"},
		{"Coroutine", "typing_extensions"},
		{"Counter", "typing_extensions"},
		{"DefaultDict", "typing_extensions"},
		{"Deque", "typing_extensions"},
		{"Type", "typing_extensions"},
		// weakref
		{"WeakKeyDictionary", "weakref"},
		{"WeakSet", "weakref"},
		{"WeakValueDictionary", "weakref"},
	}
	m := make(map[string]map[string]struct{})
	for _, pair := range pairs {
		modules, ok := m[pair.name]
		if !ok {
			modules = make(map[string]struct{})
			m[pair.name] = modules
		}
		modules[pair.module] = struct{}{}
	}
	return m
}

// pep585BuiltinsEligible are typing aliases with builtin replacements,
// assumed to come from the typing module. See:
// https://peps.python.org/pep-0585/
var pep585BuiltinsEligible = newSet("Dict", "FrozenSet", "List", "Set", "Tuple", "Type")

// pep585Builtins are the builtin generics usable as hints without import.
var pep585Builtins = newSet("dict", "frozenset", "list", "set", "tuple", "type")

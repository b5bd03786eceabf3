package eval

// currentVM is the single active interpreter a concrete builtin or
// modifier calls back into when it needs to evoke an operand that may
// itself be a compiled block. The core is single-threaded cooperative,
// so one package-level slot is sufficient — no VM instance ever
// interprets concurrently with another.
var currentVM BlockInvoker

// SetVM installs the active interpreter. The VM calls this once
// before running a program.
func SetVM(vm BlockInvoker) { currentVM = vm }

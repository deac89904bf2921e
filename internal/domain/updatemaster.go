package domain

// UpdateMasterFileName is TES5's required second master, present and
// active whenever it exists on disk (spec §1 Glossary, §3 invariant 4).
const UpdateMasterFileName = "Update.esm"

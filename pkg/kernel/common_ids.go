package kernel

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }

type AdID string

func NewAdID(id string) AdID  { return AdID(id) }
func (a AdID) String() string { return string(a) }
func (a AdID) IsEmpty() bool  { return string(a) == "" }

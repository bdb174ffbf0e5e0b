package milvus

import "time"

// DataType 字段数据类型
type DataType int32

const (
	DataTypeNone        DataType = 0
	DataTypeBool        DataType = 1
	DataTypeInt32       DataType = 4
	DataTypeInt64       DataType = 5
	DataTypeFloat       DataType = 6
	DataTypeDouble      DataType = 7
	DataTypeVarChar     DataType = 21
	DataTypeJSON        DataType = 23
	DataTypeFloatVector DataType = 100
)

// IsVector 是否为向量类型
func (dt DataType) IsVector() bool {
	return dt == DataTypeFloatVector
}

// String 返回类型名称
func (dt DataType) String() string {
	switch dt {
	case DataTypeBool:
		return "Bool"
	case DataTypeInt32:
		return "Int32"
	case DataTypeInt64:
		return "Int64"
	case DataTypeFloat:
		return "Float"
	case DataTypeDouble:
		return "Double"
	case DataTypeVarChar:
		return "VarChar"
	case DataTypeJSON:
		return "JSON"
	case DataTypeFloatVector:
		return "FloatVector"
	default:
		return "Unknown"
	}
}

// IndexType 索引类型
type IndexType string

const (
	IndexTypeFlat    IndexType = "FLAT"
	IndexTypeIVFFlat IndexType = "IVF_FLAT"
	IndexTypeIVFSQ8  IndexType = "IVF_SQ8"
	IndexTypeHNSW    IndexType = "HNSW"
)

func (it IndexType) String() string {
	return string(it)
}

// MetricType 距离度量类型
type MetricType string

const (
	MetricTypeL2     MetricType = "L2"
	MetricTypeIP     MetricType = "IP"
	MetricTypeCosine MetricType = "COSINE"
)

func (mt MetricType) String() string {
	return string(mt)
}

// ConsistencyLevel 一致性级别
type ConsistencyLevel string

const (
	ConsistencyLevelStrong     ConsistencyLevel = "Strong"
	ConsistencyLevelBounded    ConsistencyLevel = "Bounded"
	ConsistencyLevelSession    ConsistencyLevel = "Session"
	ConsistencyLevelEventually ConsistencyLevel = "Eventually"
)

// 默认值
const (
	DefaultRetries    = 3
	DefaultRetryDelay = time.Second
	DefaultTimeout    = 30 * time.Second
)
